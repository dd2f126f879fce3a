package dto

import "time"

// DashboardClientDTO is one client row on a professional's dashboard.
type DashboardClientDTO struct {
	UserID       string    `json:"userID"`
	StaminaScore int       `json:"staminaScore"`
	Color        string    `json:"color"`
	LastSeen     time.Time `json:"lastSeen"`
	Connectivity string    `json:"connectivity"`
}

// DashboardResponseDTO is returned for professional dashboards.
type DashboardResponseDTO struct {
	Clients     []DashboardClientDTO `json:"clients"`
	Tier        string               `json:"tier"`
	ClientCount int                  `json:"clientCount"`
	MaxClients  int                  `json:"maxClients"`
}
