package model

import (
	"time"

	"staminad/internal/stamina"
)

// Reading is the latest stamina measurement stored for a user. The
// store keeps at most one Reading per user; a new ingestion overwrites
// the previous one.
type Reading struct {
	UserID       string        `json:"user_id"`
	HeartRateBPM *int          `json:"heart_rate_bpm,omitempty"`
	StaminaScore int           `json:"stamina_score"`
	ZoneColor    stamina.Color `json:"zone_color"`
	CapturedAt   time.Time     `json:"captured_at"`
}
