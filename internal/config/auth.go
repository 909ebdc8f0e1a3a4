// Package config provides environment-driven configuration for the site server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AuthConfig holds the signing secrets and token lifetimes for the three
// principal kinds. Each kind signs with its own secret so a token minted for
// one kind can never verify as another even if the kind claim were forged.
type AuthConfig struct {
	AdminSecret     string
	HRSecret        string
	CandidateSecret string

	AdminTTL     time.Duration
	HRTTL        time.Duration
	CandidateTTL time.Duration
}

// NewAuthConfig reads ADMIN_JWT_SECRET, HR_JWT_SECRET, and CANDIDATE_JWT_SECRET
// (all required) plus optional ADMIN_TOKEN_HOURS, HR_TOKEN_HOURS, and
// CANDIDATE_TOKEN_HOURS overrides (defaults: 24, 24, 168).
func NewAuthConfig() (*AuthConfig, error) {
	cfg := &AuthConfig{
		AdminSecret:     os.Getenv("ADMIN_JWT_SECRET"),
		HRSecret:        os.Getenv("HR_JWT_SECRET"),
		CandidateSecret: os.Getenv("CANDIDATE_JWT_SECRET"),
	}

	var err error
	if cfg.AdminTTL, err = envHours("ADMIN_TOKEN_HOURS", 24); err != nil {
		return nil, err
	}
	if cfg.HRTTL, err = envHours("HR_TOKEN_HOURS", 24); err != nil {
		return nil, err
	}
	if cfg.CandidateTTL, err = envHours("CANDIDATE_TOKEN_HOURS", 7*24); err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *AuthConfig) normalize() error {
	if c.AdminSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET is required but not set")
	}
	if c.HRSecret == "" {
		return fmt.Errorf("HR_JWT_SECRET is required but not set")
	}
	if c.CandidateSecret == "" {
		return fmt.Errorf("CANDIDATE_JWT_SECRET is required but not set")
	}
	if c.AdminTTL < time.Hour || c.HRTTL < time.Hour || c.CandidateTTL < time.Hour {
		return fmt.Errorf("token lifetimes must be at least 1 hour")
	}
	return nil
}

func envHours(name string, def int) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return time.Duration(def) * time.Hour, nil
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return time.Duration(hours) * time.Hour, nil
}
