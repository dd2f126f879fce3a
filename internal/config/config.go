package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// UserIDValidation selects the identifier policy: "permissive"
	// (alphanumeric plus ._-, longer than 5 chars) or "strict" (the
	// Apple-style 6digits.32hex.4digits shape).
	UserIDValidation string `envconfig:"USER_ID_VALIDATION" default:"permissive"`

	// AuthToken enables the legacy single-user mode: when non-empty,
	// POST /stamina requires this value as a bearer token. Multi-user
	// deployments leave it unset and rely on userID instead.
	AuthToken string `envconfig:"AUTH_TOKEN" default:""`

	// StaleAfterSec is the silence window after which a dashboard
	// client is reported disconnected.
	StaleAfterSec int `envconfig:"STALE_AFTER_SEC" default:"300"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.UserIDValidation != "permissive" && cfg.UserIDValidation != "strict" {
		return nil, fmt.Errorf("unknown USER_ID_VALIDATION %q", cfg.UserIDValidation)
	}
	return &cfg, nil
}
