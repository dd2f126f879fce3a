package dto

import "time"

// StaminaIngestDTO is used for incoming stamina submissions. A device
// sends either a raw heart rate or an already-computed stamina score.
type StaminaIngestDTO struct {
	HeartRate    *float64 `json:"heartRate,omitempty"`
	StaminaScore *int     `json:"staminaScore,omitempty"`
	UserID       string   `json:"userID" validate:"required"`
}

// ReadingResponseDTO is returned for stored readings. Field names
// match what the web dashboard consumes.
type ReadingResponseDTO struct {
	HeartRate    *int      `json:"heartRate,omitempty"`
	StaminaScore int       `json:"staminaScore"`
	Color        string    `json:"color"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       string    `json:"userID"`
}
