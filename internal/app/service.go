// Package app provides the core business service that implements the
// dependencies required by the HTTP API: the auth chain, the record
// stores, and pagination normalization.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hansik/baedal/internal/adapters/repository"
	"github.com/hansik/baedal/internal/domain/auth"
	"github.com/hansik/baedal/internal/domain/model"
	"github.com/hansik/baedal/internal/domain/page"
	"github.com/hansik/baedal/pkg/logger"
	"github.com/hansik/baedal/pkg/metrics"
)

// Resource names used for metrics labels.
const (
	resourcePrincipals  = "principals"
	resourceUsers       = "users"
	resourceProducts    = "products"
	resourceRestaurants = "restaurants"
)

// Service owns the in-memory stores and exposes the operations the HTTP
// handlers depend on. All state lives for exactly one process lifetime.
type Service struct {
	mu sync.RWMutex

	// Core components
	tokens      repository.Tokens
	users       repository.UserRecords
	catalog     repository.Products
	restaurants repository.Restaurants
	verifier    *auth.Verifier

	// Configuration
	catalogSize  int
	defaultLimit int
	maxLimit     int

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalogSize sets how many products the generated catalog holds.
func WithCatalogSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.catalogSize = n
		}
	}
}

// WithPageLimits sets the default and maximum page limit.
func WithPageLimits(def, max int) Option {
	return func(s *Service) {
		if def > 0 {
			s.defaultLimit = def
		}
		if max > 0 {
			s.maxLimit = max
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalogSize:  100,
		defaultLimit: page.DefaultLimit,
		maxLimit:     page.MaxLimit,
		logger:       nil, // resolved on Start
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultPrincipals is the static token table: two principals, one per
// role, keyed by opaque bearer token.
func defaultPrincipals() map[string]auth.Principal {
	return map[string]auth.Principal{
		"alice_token": {Username: "alice", Email: "alice@example.com", Role: auth.RoleAdmin},
		"bob_token":   {Username: "bob", Email: "bob@example.com", Role: auth.RoleUser},
	}
}

func defaultUsers() []model.UserRecord {
	return []model.UserRecord{
		{ID: 1, Name: "Kim Chulsoo", Email: "kim@example.com"},
		{ID: 2, Name: "Lee Younghee", Email: "lee@example.com"},
	}
}

func defaultRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{ID: 1, Name: "Tasty Chicken", Category: "chicken", Rating: 4.5},
		{ID: 2, Name: "Happy Pizza", Category: "pizza", Rating: 4.8},
	}
}

// Start seeds the stores and builds the auth verifier.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.tokens = repository.NewTokenDirectory(repository.WithPrincipals(defaultPrincipals()))
	s.users = repository.NewUserStore(repository.WithUsers(defaultUsers()))
	s.catalog = repository.NewCatalog(repository.WithCatalogSize(s.catalogSize))
	s.restaurants = repository.NewRestaurantStore(repository.WithRestaurants(defaultRestaurants()))
	s.verifier = auth.NewVerifier(s.tokens)

	s.started = true
	s.startedAt = time.Now()

	s.updateStoreMetrics(ctx)
	s.logger.Info(ctx, "service started",
		logger.Int("catalogSize", s.catalog.Len(ctx)),
		logger.Int("defaultLimit", s.defaultLimit),
		logger.Int("maxLimit", s.maxLimit),
	)
	return nil
}

// Stop shuts down the service. The stores are volatile, so stopping
// simply drops them.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "service stopped")
}

// Authenticate runs the auth chain for a bearer token.
func (s *Service) Authenticate(ctx context.Context, token string) (auth.Principal, error) {
	p, err := s.verifier.Authenticate(ctx, token)
	if err != nil {
		metrics.RecordAuthFailure("unauthenticated")
		return auth.Principal{}, err
	}
	return p, nil
}

// Authorize runs the auth chain and then a capability check.
func (s *Service) Authorize(ctx context.Context, token string, c auth.Capability) (auth.Principal, error) {
	p, err := s.verifier.Authorize(ctx, token, c)
	if err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			metrics.RecordAuthFailure("forbidden")
		} else {
			metrics.RecordAuthFailure("unauthenticated")
		}
		return auth.Principal{}, err
	}
	return p, nil
}

// DeletePrincipal removes a principal from the token directory by
// username. An unknown username yields repository.ErrNotFound.
func (s *Service) DeletePrincipal(ctx context.Context, username string) error {
	if err := s.tokens.Delete(ctx, username); err != nil {
		return err
	}
	metrics.RecordRecordDeleted(resourcePrincipals)
	metrics.UpdateStoreRecords(resourcePrincipals, s.tokens.Len(ctx))
	s.logger.Info(ctx, "principal deleted", logger.String("username", username))
	return nil
}

// Window normalizes raw skip/limit values against the configured page cap.
func (s *Service) Window(skip, limit int) page.Window {
	w := page.Normalize(skip, limit, page.WithMaxLimit(s.maxLimit))
	metrics.ObservePageLimit(w.Limit)
	return w
}

// DefaultLimit returns the limit used when a request omits one.
func (s *Service) DefaultLimit() int {
	return s.defaultLimit
}

// ListProducts returns one catalog page plus the full catalog length.
func (s *Service) ListProducts(ctx context.Context, w page.Window) (int, []model.Product) {
	all := s.catalog.List(ctx)
	return len(all), page.Cut(all, w)
}

// SearchProducts filters the catalog by name substring, then paginates
// the filtered sequence. The returned total counts matches, not the page.
func (s *Service) SearchProducts(ctx context.Context, keyword string, w page.Window) (int, []model.Product) {
	metrics.RecordSearch(resourceProducts)
	matched := s.catalog.Search(ctx, keyword)
	return len(matched), page.Cut(matched, w)
}

// ListUsers returns all user records.
func (s *Service) ListUsers(ctx context.Context) []model.UserRecord {
	return s.users.List(ctx)
}

// GetUser returns one user record by id.
func (s *Service) GetUser(ctx context.Context, id int) (model.UserRecord, error) {
	return s.users.Get(ctx, id)
}

// CreateUser appends a user record and returns it with its assigned id.
func (s *Service) CreateUser(ctx context.Context, name, email string) model.UserRecord {
	r := s.users.Create(ctx, name, email)
	metrics.RecordRecordCreated(resourceUsers)
	metrics.UpdateStoreRecords(resourceUsers, s.users.Len(ctx))
	s.logger.Info(ctx, "user created", logger.Int("id", r.ID))
	return r
}

// ListRestaurants returns all restaurants.
func (s *Service) ListRestaurants(ctx context.Context) []model.Restaurant {
	return s.restaurants.List(ctx)
}

// SearchRestaurants returns restaurants matching a category exactly.
func (s *Service) SearchRestaurants(ctx context.Context, category string) []model.Restaurant {
	metrics.RecordSearch(resourceRestaurants)
	return s.restaurants.Search(ctx, category)
}

// GetRestaurant returns one restaurant by id.
func (s *Service) GetRestaurant(ctx context.Context, id int) (model.Restaurant, error) {
	return s.restaurants.Get(ctx, id)
}

// CreateRestaurant appends a restaurant and returns it with its id.
func (s *Service) CreateRestaurant(ctx context.Context, name, category string, rating float64) model.Restaurant {
	r := s.restaurants.Create(ctx, name, category, rating)
	metrics.RecordRecordCreated(resourceRestaurants)
	metrics.UpdateStoreRecords(resourceRestaurants, s.restaurants.Len(ctx))
	s.logger.Info(ctx, "restaurant created", logger.Int("id", r.ID), logger.String("category", category))
	return r
}

// GetStats returns a snapshot of store sizes for the ops endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}
	if !s.started {
		return stats
	}
	stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
	stats["principals"] = s.tokens.Len(ctx)
	stats["users"] = s.users.Len(ctx)
	stats["products"] = s.catalog.Len(ctx)
	stats["restaurants"] = s.restaurants.Len(ctx)
	return stats
}

// UpdateStoreMetrics refreshes the per-store record gauges.
func (s *Service) UpdateStoreMetrics(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return
	}
	s.updateStoreMetrics(ctx)
}

func (s *Service) updateStoreMetrics(ctx context.Context) {
	metrics.UpdateStoreRecords(resourcePrincipals, s.tokens.Len(ctx))
	metrics.UpdateStoreRecords(resourceUsers, s.users.Len(ctx))
	metrics.UpdateStoreRecords(resourceProducts, s.catalog.Len(ctx))
	metrics.UpdateStoreRecords(resourceRestaurants, s.restaurants.Len(ctx))
}
