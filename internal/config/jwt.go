package config

import (
	"fmt"
	"time"
)

const defaultJWTExpirationHours = 24

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// JWT builds the token configuration from the auth section.
// JWT_SECRET is required; JWT_EXPIRATION_HOURS defaults to 24.
func (c *Config) JWT() (*JWTConfig, error) {
	hours := c.Auth.JWTExpirationHours
	if hours == 0 {
		hours = defaultJWTExpirationHours
	}

	cfg := &JWTConfig{
		Secret:          c.Auth.JWTSecret,
		ExpirationHours: hours,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Expiration returns the token lifetime.
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
