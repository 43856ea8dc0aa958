package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resumatch/internal/analysis"
	"github.com/jonathan/resumatch/internal/db"
	"github.com/jonathan/resumatch/internal/rendering"
	"github.com/jonathan/resumatch/internal/schemas"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error, looking through wrapping.
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		badCreds      *ErrInvalidCredentials
		mismatch      *ErrPasswordMismatch
		userNotFound  *ErrUserNotFound
		validation    *ErrValidation
		schemaInvalid *schemas.ValidationError
		renderErr     *rendering.RenderError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &emailExists), errors.Is(err, db.ErrEmailTaken):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &mismatch):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound), errors.Is(err, db.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &schemaInvalid), errors.Is(err, analysis.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.As(err, &renderErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
