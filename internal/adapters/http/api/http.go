// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hansik/baedal/internal/adapters/repository"
	"github.com/hansik/baedal/internal/domain/auth"
)

// Dependencies bundles everything the HTTP handlers need. Using an
// interface bundle keeps the handler layer loosely coupled to the
// service implementation in other packages.
type Dependencies interface {
	AuthDependencies
	AdminDependencies
	ProductDependencies
	UserDependencies
	RestaurantDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	rootHandler        *RootHandler
	profileHandler     *ProfileHandler
	adminHandler       *AdminHandler
	productsHandler    *ProductsHandler
	searchHandler      *SearchHandler
	usersHandler       *UsersHandler
	restaurantsHandler *RestaurantsHandler
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		rootHandler:        NewRootHandler(),
		profileHandler:     NewProfileHandler(deps),
		adminHandler:       NewAdminHandler(deps),
		productsHandler:    NewProductsHandler(deps),
		searchHandler:      NewSearchHandler(deps),
		usersHandler:       NewUsersHandler(deps),
		restaurantsHandler: NewRestaurantsHandler(deps),
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux. Literal paths are registered
// before parameterized subtrees sharing the same prefix, and the subtree
// handlers check literal segments (e.g. "search") before interpreting a
// segment as an id, so a literal route is never captured as a parameter.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/profile", MetricsMiddleware(s.profileHandler.HandleGetProfile, "profile"))
	mux.HandleFunc("/admin", MetricsMiddleware(s.adminHandler.HandleGetAdmin, "admin"))
	mux.HandleFunc("/products", MetricsMiddleware(s.productsHandler.HandleGetProducts, "products"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/users/", MetricsMiddleware(s.usersHandler.HandleUsers, "users"))
	mux.HandleFunc("/restaurants/", MetricsMiddleware(s.restaurantsHandler.HandleRestaurants, "restaurants"))
	// Catch-all last; the handler rejects anything but "/" itself.
	mux.HandleFunc("/", MetricsMiddleware(s.rootHandler.HandleRoot, "root"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinels into the error taxonomy:
// unauthenticated -> 401, forbidden -> 403, not found -> 404, anything
// else -> 500. Every error is terminal for the request.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", err)
	case errors.Is(err, auth.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
