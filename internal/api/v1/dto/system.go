package dto

import "time"

// RootResponseDTO is the service banner returned at /.
type RootResponseDTO struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponseDTO is returned at /health.
type HealthResponseDTO struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Service    string    `json:"service"`
	UsersCount int       `json:"users_count"`
}

// DebugUsersResponseDTO dumps the active user set with truncated IDs.
type DebugUsersResponseDTO struct {
	TotalUsers int      `json:"total_users"`
	UserIDs    []string `json:"user_ids"`
}

// DebugShareCodeDTO is one issued code with its truncated owner.
type DebugShareCodeDTO struct {
	ShareCode string `json:"shareCode"`
	UserID    string `json:"userID"`
}

// DebugShareCodesResponseDTO dumps the issued share codes.
type DebugShareCodesResponseDTO struct {
	TotalCodes int                 `json:"total_codes"`
	Codes      []DebugShareCodeDTO `json:"codes"`
}
