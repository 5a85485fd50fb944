// Package repository provides the in-memory, per-process record stores
// backing the API. Every store is an explicitly owned object with an
// interior id counter; mutation is guarded by a mutex so concurrent
// creates can never assign the same id. Storage is volatile: nothing
// survives a restart.
package repository

import (
	"context"

	"github.com/hansik/baedal/internal/domain/auth"
	"github.com/hansik/baedal/internal/domain/model"
)

// Tokens resolves bearer tokens to principals and supports the
// admin-gated removal of a principal by username.
type Tokens interface {
	auth.Directory

	// Delete removes the principal with the given username.
	// Returns ErrNotFound if no such principal exists.
	Delete(ctx context.Context, username string) error

	// Len returns the number of known principals.
	Len(ctx context.Context) int
}

// UserRecords is the append-only user directory of the users surface.
type UserRecords interface {
	// List returns all records in insertion order.
	List(ctx context.Context) []model.UserRecord

	// Get returns the record with the given id.
	// Returns ErrNotFound if no record matches.
	Get(ctx context.Context, id int) (model.UserRecord, error)

	// Create appends a new record, assigning the next id in sequence.
	Create(ctx context.Context, name, email string) model.UserRecord

	// Len returns the number of records.
	Len(ctx context.Context) int
}

// Products is the fixed product catalog.
type Products interface {
	// List returns the full catalog in id order.
	List(ctx context.Context) []model.Product

	// Search returns products whose name contains keyword, preserving
	// catalog order. Matching is case-sensitive substring containment.
	Search(ctx context.Context, keyword string) []model.Product

	// Len returns the catalog size.
	Len(ctx context.Context) int
}

// Restaurants is the append-only restaurant listing store.
type Restaurants interface {
	// List returns all restaurants in insertion order.
	List(ctx context.Context) []model.Restaurant

	// Search returns restaurants whose category matches exactly.
	Search(ctx context.Context, category string) []model.Restaurant

	// Get returns the restaurant with the given id.
	// Returns ErrNotFound if no restaurant matches.
	Get(ctx context.Context, id int) (model.Restaurant, error)

	// Create appends a new restaurant, assigning the next id in sequence.
	Create(ctx context.Context, name, category string, rating float64) model.Restaurant

	// Len returns the number of restaurants.
	Len(ctx context.Context) int
}
