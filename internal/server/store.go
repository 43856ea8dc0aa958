package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/resumatch/internal/db"
	"github.com/jonathan/resumatch/internal/types"
)

// UserStore persists accounts. *db.DB implements it.
type UserStore interface {
	CreateUser(ctx context.Context, nu db.NewUser) (*db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// DraftStore persists one saved analysis input per user. *db.DB implements it.
type DraftStore interface {
	UpsertDraft(ctx context.Context, userID uuid.UUID, req *types.SaveDraftRequest) (*types.Draft, error)
	GetDraft(ctx context.Context, userID uuid.UUID) (*types.Draft, error)
	DeleteDraft(ctx context.Context, userID uuid.UUID) error
}

// Store is everything the account and draft routes need.
type Store interface {
	UserStore
	DraftStore
}

var _ Store = (*db.DB)(nil)
