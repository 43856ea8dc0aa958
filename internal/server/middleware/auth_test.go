package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts the tokens in its map.
type stubValidator map[string]uuid.UUID

func (v stubValidator) ValidateToken(token string) (UserIDGetter, error) {
	id, ok := v[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return stubClaims(id), nil
}

type stubClaims uuid.UUID

func (c stubClaims) GetUserID() uuid.UUID { return uuid.UUID(c) }

// echoUserID writes the user ID the middleware put in the context.
var echoUserID = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, err := GetUserID(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(id.String()))
})

func TestRequireUser(t *testing.T) {
	userID := uuid.New()
	handler := RequireUser(stubValidator{"good-token": userID})(echoUserID)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid", "Bearer good-token", http.StatusOK},
		{"lowercase scheme", "bearer good-token", http.StatusOK},
		{"extra spaces", "Bearer   good-token  ", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no scheme", "good-token", http.StatusUnauthorized},
		{"basic scheme", "Basic good-token", http.StatusUnauthorized},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"three parts", "Bearer good-token extra", http.StatusUnauthorized},
		{"unknown token", "Bearer forged", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/draft", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func TestRequireUser_JSONBody(t *testing.T) {
	handler := RequireUser(stubValidator{})(echoUserID)

	req := httptest.NewRequest(http.MethodGet, "/me/draft", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"BEARER abc", "abc", true},
		{"\tBearer\tabc ", "abc", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Token abc", "", false},
		{"Bearer a b", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/draft", nil)
			req.Header.Set("Authorization", tt.header)

			got, ok := bearerToken(req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/me/draft", nil)

	_, err := GetUserID(req)
	assert.ErrorIs(t, err, ErrNoUser)

	// a foreign key with the same name must not collide with the middleware's key
	type foreignKey string
	other := req.WithContext(context.WithValue(req.Context(), foreignKey("userID"), userID))
	id, err := GetUserID(other)
	assert.ErrorIs(t, err, ErrNoUser)
	assert.Equal(t, uuid.Nil, id)

	id, err = GetUserID(req.WithContext(WithUserID(req.Context(), userID)))
	require.NoError(t, err)
	assert.Equal(t, userID, id)
}
