package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resumatch/internal/db"
	"github.com/jonathan/resumatch/internal/rendering"
	"github.com/jonathan/resumatch/internal/schemas"
	"github.com/jonathan/resumatch/internal/server/middleware"
	"github.com/jonathan/resumatch/internal/skills"
	"github.com/jonathan/resumatch/internal/types"
	"go.uber.org/zap"
)

// SkillsResponse lists both skill catalogs in output order.
type SkillsResponse struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SkillsResponse{
		HardSkills: skills.HardSkills(),
		SoftSkills: skills.SoftSkills(),
	})
}

// handleAnalyze compares one job description with one résumé.
// ?format=text|csv returns the rendered report instead of JSON.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	format, err := requestFormat(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	var req types.AnalyzeRequest
	if err := s.decodeValidated(w, r, schemas.KindAnalyzeRequest, &req); err != nil {
		writeErr(w, err)
		return
	}

	result, err := s.service.Analyze(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	s.render(w, format, result)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRequest
	if err := s.decodeValidated(w, r, schemas.KindBatchRequest, &req); err != nil {
		writeErr(w, err)
		return
	}

	resp, err := s.service.AnalyzeBatch(r.Context(), &req, 0)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetDraft returns the saved draft, or the defaults when nothing was saved.
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	draft, err := s.drafts.GetDraft(r.Context(), userID)
	if errors.Is(err, db.ErrDraftNotFound) {
		draft = types.EmptyDraft(userID)
	} else if err != nil {
		s.logger.Error("failed to load draft", zap.Stringer("user_id", userID), zap.Error(err))
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveDraftRequest
	if err := s.decodeValidated(w, r, schemas.KindDraft, &req); err != nil {
		writeErr(w, err)
		return
	}

	draft, err := s.drafts.UpsertDraft(r.Context(), userID, &req)
	if err != nil {
		s.logger.Error("failed to save draft", zap.Stringer("user_id", userID), zap.Error(err))
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// handleDeleteDraft clears the saved draft. Clearing an empty draft succeeds.
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := s.drafts.DeleteDraft(r.Context(), userID); err != nil && !errors.Is(err, db.ErrDraftNotFound) {
		s.logger.Error("failed to delete draft", zap.Stringer("user_id", userID), zap.Error(err))
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalyzeDraft(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	format, err := requestFormat(r)
	if err != nil {
		writeErr(w, err)
		return
	}

	draft, err := s.drafts.GetDraft(r.Context(), userID)
	if err != nil {
		writeErr(w, err)
		return
	}

	result, err := s.service.Analyze(r.Context(), draft.AnalyzeRequest())
	if err != nil {
		writeErr(w, err)
		return
	}
	s.render(w, format, result)
}

// decodeValidated reads the body, checks it against the embedded schema for kind,
// decodes it into dst and runs struct validation.
func (s *Server) decodeValidated(w http.ResponseWriter, r *http.Request, kind schemas.Kind, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return &ErrValidation{Field: "body", Message: "request body too large or unreadable"}
	}
	if !json.Valid(body) {
		return &ErrValidation{Field: "body", Message: "Invalid request body"}
	}
	if err := schemas.Validate(kind, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrValidation{Field: "body", Message: "Invalid request body"}
	}
	if err := s.validator.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ErrValidation{Field: fieldErrs[0].Namespace(), Message: fieldErrs[0].Tag()}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// requestFormat reads ?format=, defaulting to JSON for API clients.
func requestFormat(r *http.Request) (rendering.Format, error) {
	name := r.URL.Query().Get("format")
	if name == "" {
		return rendering.FormatJSON, nil
	}
	return rendering.ParseFormat(name)
}

func (s *Server) render(w http.ResponseWriter, format rendering.Format, result *types.AnalysisResult) {
	if format == rendering.FormatJSON {
		writeJSON(w, http.StatusOK, result)
		return
	}

	var buf bytes.Buffer
	if err := rendering.Render(&buf, format, result); err != nil {
		s.logger.Error("failed to render report", zap.String("format", string(format)), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render report")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
