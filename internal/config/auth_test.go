package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_Defaults(t *testing.T) {
	cfg := Default()
	cfg.Auth.JWTSecret = "test-secret-key"

	jwtCfg, err := cfg.JWT()
	require.NoError(t, err)
	assert.Equal(t, "test-secret-key", jwtCfg.Secret)
	assert.Equal(t, 24, jwtCfg.ExpirationHours)
	assert.Equal(t, "24h0m0s", jwtCfg.Expiration().String())
}

func TestJWT_Errors(t *testing.T) {
	tests := []struct {
		name    string
		auth    AuthConfig
		wantErr string
	}{
		{"missing secret", AuthConfig{JWTExpirationHours: 24}, "JWT_SECRET is required"},
		{"negative expiration", AuthConfig{JWTSecret: "x", JWTExpirationHours: -5}, "at least 1 hour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Auth: tt.auth}
			_, err := cfg.JWT()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJWT_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := Load("")
	require.NoError(t, err)

	jwtCfg, err := cfg.JWT()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", jwtCfg.Secret)
	assert.Equal(t, 48, jwtCfg.ExpirationHours)
}

func TestPasswords_CostRange(t *testing.T) {
	tests := []struct {
		cost    int
		wantErr bool
	}{
		{0, false},
		{9, true},
		{10, false},
		{14, false},
		{15, true},
	}

	for _, tt := range tests {
		cfg := Config{Auth: AuthConfig{BcryptCost: tt.cost}}
		pw, err := cfg.Passwords()
		if tt.wantErr {
			assert.Error(t, err, "cost %d", tt.cost)
			continue
		}
		require.NoError(t, err, "cost %d", tt.cost)
		if tt.cost == 0 {
			assert.Equal(t, defaultBcryptCost, pw.BcryptCost)
		}
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	pw := &PasswordConfig{BcryptCost: minBcryptCost}

	hash, err := pw.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))

	assert.True(t, pw.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, pw.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: minBcryptCost, Pepper: "pepper"}
	plain := &PasswordConfig{BcryptCost: minBcryptCost}

	hash, err := peppered.HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("secret", hash))
	assert.False(t, plain.VerifyPassword("secret", hash))
	assert.False(t, (&PasswordConfig{BcryptCost: minBcryptCost, Pepper: "other"}).VerifyPassword("secret", hash))
}

func TestPasswordConfig_SaltUniqueness(t *testing.T) {
	pw := &PasswordConfig{BcryptCost: minBcryptCost}

	a, err := pw.HashPassword("same")
	require.NoError(t, err)
	b, err := pw.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordConfig_TooLong(t *testing.T) {
	pw := &PasswordConfig{BcryptCost: minBcryptCost}

	_, err := pw.HashPassword(strings.Repeat("a", 80))
	assert.Error(t, err)
}
