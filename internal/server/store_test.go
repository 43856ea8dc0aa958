package server

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resumatch/internal/db"
	"github.com/jonathan/resumatch/internal/types"
)

// fakeStore is an in-memory Store. Setting failAll, or an entry in fail keyed
// by method name, makes calls return that error.
type fakeStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*db.User
	drafts  map[uuid.UUID]*types.Draft
	failAll error
	fail    map[string]error

	// staleEmailCheck makes CheckEmailExists report false, as it would when
	// another registration lands between the check and the insert.
	staleEmailCheck bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*db.User),
		drafts: make(map[uuid.UUID]*types.Draft),
		fail:   make(map[string]error),
	}
}

// failOn makes the named method return err until cleared with a nil err.
func (f *fakeStore) failOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.fail, method)
		return
	}
	f.fail[method] = err
}

// injected must be called with mu held.
func (f *fakeStore) injected(method string) error {
	if f.failAll != nil {
		return f.failAll
	}
	return f.fail[method]
}

func (f *fakeStore) userCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

func (f *fakeStore) lookupEmail(email string) *db.User {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (f *fakeStore) CreateUser(_ context.Context, nu db.NewUser) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("CreateUser"); err != nil {
		return nil, err
	}
	if f.lookupEmail(nu.Email) != nil {
		return nil, db.ErrEmailTaken
	}
	now := time.Now()
	u := &db.User{
		ID:           uuid.New(),
		Name:         nu.Name,
		Email:        strings.ToLower(strings.TrimSpace(nu.Email)),
		Phone:        nu.Phone,
		PasswordHash: nu.PasswordHash,
		PasswordSet:  nu.PasswordHash != "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.users[u.ID] = u
	copied := *u
	return &copied, nil
}

func (f *fakeStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("GetUser"); err != nil {
		return nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("GetUserByEmail"); err != nil {
		return nil, err
	}
	u := f.lookupEmail(email)
	if u == nil {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("CheckEmailExists"); err != nil {
		return false, err
	}
	if f.staleEmailCheck {
		return false, nil
	}
	return f.lookupEmail(email) != nil, nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("UpdatePassword"); err != nil {
		return err
	}
	u, ok := f.users[userID]
	if !ok {
		return errors.New("user not found: " + userID.String())
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now()
	return nil
}

func (f *fakeStore) UpsertDraft(_ context.Context, userID uuid.UUID, req *types.SaveDraftRequest) (*types.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("UpsertDraft"); err != nil {
		return nil, err
	}
	settings := types.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	d := &types.Draft{
		ID:             uuid.New(),
		UserID:         userID,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Resume:         req.Resume,
		Settings:       settings,
		UpdatedAt:      time.Now(),
	}
	if existing, ok := f.drafts[userID]; ok {
		d.ID = existing.ID
	}
	f.drafts[userID] = d
	copied := *d
	return &copied, nil
}

func (f *fakeStore) GetDraft(_ context.Context, userID uuid.UUID) (*types.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("GetDraft"); err != nil {
		return nil, err
	}
	d, ok := f.drafts[userID]
	if !ok {
		return nil, db.ErrDraftNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeStore) DeleteDraft(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.injected("DeleteDraft"); err != nil {
		return err
	}
	if _, ok := f.drafts[userID]; !ok {
		return db.ErrDraftNotFound
	}
	delete(f.drafts, userID)
	return nil
}

var _ Store = (*fakeStore)(nil)
