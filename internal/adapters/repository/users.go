package repository

import (
	"context"
	"sync"

	"github.com/hansik/baedal/internal/domain/model"
)

// UserStore implements UserRecords as an append-only in-memory sequence.
// Ids are assigned from an interior counter and are never reclaimed, so
// they stay unique and increasing for the process lifetime.
type UserStore struct {
	mu      sync.RWMutex
	records []model.UserRecord
	lastID  int
}

// UserOption applies a configuration option to the UserStore.
type UserOption func(*UserStore)

// WithUsers seeds the store. Seed ids are taken as-is; the id counter
// resumes after the highest seeded id.
func WithUsers(seed []model.UserRecord) UserOption {
	return func(s *UserStore) {
		s.records = append(s.records, seed...)
		for _, r := range seed {
			if r.ID > s.lastID {
				s.lastID = r.ID
			}
		}
	}
}

// NewUserStore creates a user record store, empty unless seeded.
func NewUserStore(opts ...UserOption) *UserStore {
	s := &UserStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all records in insertion order.
func (s *UserStore) List(_ context.Context) []model.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.UserRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get scans for the record with the given id.
func (s *UserStore) Get(_ context.Context, id int) (model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.UserRecord{}, ErrNotFound
}

// Create appends a new record with the next id in sequence and returns
// it. The counter bump and append happen under one lock so concurrent
// creates cannot share an id.
func (s *UserStore) Create(_ context.Context, name, email string) model.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	r := model.UserRecord{ID: s.lastID, Name: name, Email: email}
	s.records = append(s.records, r)
	return r
}

// Len returns the number of records.
func (s *UserStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
