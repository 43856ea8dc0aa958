package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resumatch/internal/types"
)

// UpsertDraft replaces the user's saved draft. A nil Settings keeps the defaults.
func (db *DB) UpsertDraft(ctx context.Context, userID uuid.UUID, req *types.SaveDraftRequest) (*types.Draft, error) {
	settings := types.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft settings: %w", err)
	}

	draft := &types.Draft{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Resume:         req.Resume,
		Settings:       settings,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO drafts (user_id, job_title, job_description, resume, settings)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET job_title = $2, job_description = $3, resume = $4, settings = $5, updated_at = NOW()
		 RETURNING id, updated_at`,
		userID, req.JobTitle, req.JobDescription, req.Resume, settingsJSON,
	).Scan(&draft.ID, &draft.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// GetDraft returns the user's saved draft or ErrDraftNotFound.
func (db *DB) GetDraft(ctx context.Context, userID uuid.UUID) (*types.Draft, error) {
	var (
		draft        types.Draft
		settingsJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_title, job_description, resume, settings, updated_at
		 FROM drafts WHERE user_id = $1`, userID,
	).Scan(&draft.ID, &draft.UserID, &draft.JobTitle, &draft.JobDescription, &draft.Resume, &settingsJSON, &draft.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	draft.Settings = types.DefaultSettings()
	if err := json.Unmarshal(settingsJSON, &draft.Settings); err != nil {
		return nil, fmt.Errorf("failed to decode draft settings: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes the user's draft. Returns ErrDraftNotFound when there was none.
func (db *DB) DeleteDraft(ctx context.Context, userID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM drafts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}
	return nil
}
