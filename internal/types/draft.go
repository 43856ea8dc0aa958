package types

import (
	"time"

	"github.com/google/uuid"
)

// Draft is the saved analysis input for a user: texts and settings, never results.
type Draft struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	JobTitle       string           `json:"job_title"`
	JobDescription string           `json:"job_description"`
	Resume         string           `json:"resume"`
	Settings       AnalysisSettings `json:"settings"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SaveDraftRequest replaces the stored draft.
type SaveDraftRequest struct {
	JobTitle       string            `json:"job_title" validate:"max=300"`
	JobDescription string            `json:"job_description" validate:"max=100000"`
	Resume         string            `json:"resume" validate:"max=100000"`
	Settings       *AnalysisSettings `json:"settings,omitempty" validate:"omitempty"`
}

// EmptyDraft returns the draft a user sees before saving anything.
func EmptyDraft(userID uuid.UUID) *Draft {
	return &Draft{
		UserID:   userID,
		Settings: DefaultSettings(),
	}
}

// AnalyzeRequest converts the draft into an analysis request.
func (d *Draft) AnalyzeRequest() *AnalyzeRequest {
	settings := d.Settings
	return &AnalyzeRequest{
		JobTitle:       d.JobTitle,
		JobDescription: d.JobDescription,
		Resume:         d.Resume,
		Settings:       &settings,
	}
}
