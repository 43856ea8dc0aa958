package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultBcryptCost = 12
	minBcryptCost     = 10
	maxBcryptCost     = 14
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// Passwords builds the hashing configuration from the auth section.
// BCRYPT_COST defaults to 12 and must be within 10-14.
func (c *Config) Passwords() (*PasswordConfig, error) {
	cost := c.Auth.BcryptCost
	if cost == 0 {
		cost = defaultBcryptCost
	}

	cfg := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     c.Auth.PasswordPepper,
	}
	if cfg.BcryptCost < minBcryptCost || cfg.BcryptCost > maxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cfg.BcryptCost, minBcryptCost, maxBcryptCost)
	}
	return cfg, nil
}

// HashPassword hashes a password using bcrypt, with the pepper appended when set.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.peppered(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches storedHash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.peppered(pw))) == nil
}

func (c *PasswordConfig) peppered(pw string) string {
	return pw + c.Pepper
}
