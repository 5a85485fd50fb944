package repository

import (
	"context"
	"sync"

	"github.com/hansik/baedal/internal/domain/model"
)

// RestaurantStore implements Restaurants as an append-only in-memory
// sequence with the same interior id counter scheme as UserStore.
type RestaurantStore struct {
	mu      sync.RWMutex
	records []model.Restaurant
	lastID  int
}

// RestaurantOption applies a configuration option to the RestaurantStore.
type RestaurantOption func(*RestaurantStore)

// WithRestaurants seeds the store. Seed ids are taken as-is; the id
// counter resumes after the highest seeded id.
func WithRestaurants(seed []model.Restaurant) RestaurantOption {
	return func(s *RestaurantStore) {
		s.records = append(s.records, seed...)
		for _, r := range seed {
			if r.ID > s.lastID {
				s.lastID = r.ID
			}
		}
	}
}

// NewRestaurantStore creates a restaurant store, empty unless seeded.
func NewRestaurantStore(opts ...RestaurantOption) *RestaurantStore {
	s := &RestaurantStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all restaurants in insertion order.
func (s *RestaurantStore) List(_ context.Context) []model.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Restaurant, len(s.records))
	copy(out, s.records)
	return out
}

// Search returns restaurants whose category matches exactly. An unknown
// category yields an empty result, not an error.
func (s *RestaurantStore) Search(_ context.Context, category string) []model.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Restaurant, 0)
	for _, r := range s.records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Get scans for the restaurant with the given id.
func (s *RestaurantStore) Get(_ context.Context, id int) (model.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Restaurant{}, ErrNotFound
}

// Create appends a new restaurant with the next id in sequence.
func (s *RestaurantStore) Create(_ context.Context, name, category string, rating float64) model.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	r := model.Restaurant{ID: s.lastID, Name: name, Category: category, Rating: rating}
	s.records = append(s.records, r)
	return r
}

// Len returns the number of restaurants.
func (s *RestaurantStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
