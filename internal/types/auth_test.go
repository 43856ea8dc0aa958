package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := func() CreateUserRequest {
		return CreateUserRequest{Name: "Ada Lovelace", Email: "ada@example.com", Password: "correct-horse"}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateUserRequest)
		wantErr string
	}{
		{"valid", func(*CreateUserRequest) {}, ""},
		{"with phone", func(r *CreateUserRequest) { r.Phone = "+1 555 0100" }, ""},
		{"missing name", func(r *CreateUserRequest) { r.Name = "" }, "Name"},
		{"long name", func(r *CreateUserRequest) { r.Name = strings.Repeat("a", 201) }, "Name"},
		{"missing email", func(r *CreateUserRequest) { r.Email = "" }, "Email"},
		{"bad email", func(r *CreateUserRequest) { r.Email = "not-an-email" }, "Email"},
		{"short password", func(r *CreateUserRequest) { r.Password = "short" }, "Password"},
		{"eight char password", func(r *CreateUserRequest) { r.Password = "12345678" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "ada@example.com", Password: "x"}).Validate())
	assert.ErrorContains(t, (&LoginRequest{Email: "ada", Password: "x"}).Validate(), "Email")
	assert.ErrorContains(t, (&LoginRequest{Email: "ada@example.com"}).Validate(), "Password")
}

func TestUpdatePasswordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "new-password"}).Validate())
	assert.ErrorContains(t, (&UpdatePasswordRequest{NewPassword: "new-password"}).Validate(), "CurrentPassword")
	assert.ErrorContains(t, (&UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "short"}).Validate(), "NewPassword")
}

func TestLoginResponse_JSON(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	resp := LoginResponse{
		User: &User{
			ID:          uuid.MustParse("7d3c1f9e-2b1a-4c5d-9e8f-0a1b2c3d4e5f"),
			Name:        "Ada",
			Email:       "ada@example.com",
			PasswordSet: true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		Token: "jwt",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"user": {
			"id": "7d3c1f9e-2b1a-4c5d-9e8f-0a1b2c3d4e5f",
			"name": "Ada",
			"email": "ada@example.com",
			"password_set": true,
			"created_at": "2024-03-01T12:00:00Z",
			"updated_at": "2024-03-01T12:00:00Z"
		},
		"token": "jwt"
	}`, string(data))
}
