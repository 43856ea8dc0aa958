package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resumatch/internal/schemas"
	"go.uber.org/zap"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string       `json:"error"`
	Details []fieldIssue `json:"details,omitempty"`
}

type fieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeJSON writes data as a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode JSON response", zap.Error(err))
	}
}

// writeError writes an error JSON response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeErr maps err to a status code and writes it, listing schema violations when present.
func writeErr(w http.ResponseWriter, err error) {
	body := errorBody{Error: err.Error()}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		body.Error = "request does not match schema"
		for _, fe := range schemaErr.Errors {
			body.Details = append(body.Details, fieldIssue{Field: fe.Field, Message: fe.Message})
		}
	}

	writeJSON(w, HTTPStatus(err), body)
}
