// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/hansik/baedal/internal/domain/model"
)

// RestaurantDependencies defines the interface for restaurant operations.
type RestaurantDependencies interface {
	ListRestaurants(ctx context.Context) []model.Restaurant
	SearchRestaurants(ctx context.Context, category string) []model.Restaurant
	GetRestaurant(ctx context.Context, id int) (model.Restaurant, error)
	CreateRestaurant(ctx context.Context, name, category string, rating float64) model.Restaurant
}

// RestaurantsHandler handles the /restaurants/ subtree.
type RestaurantsHandler struct {
	deps RestaurantDependencies
}

// NewRestaurantsHandler creates a new restaurants handler.
func NewRestaurantsHandler(deps RestaurantDependencies) *RestaurantsHandler {
	return &RestaurantsHandler{deps: deps}
}

type restaurantsResponse struct {
	Restaurants []model.Restaurant `json:"restaurants"`
}

type restaurantResultsResponse struct {
	Results []model.Restaurant `json:"results"`
}

type restaurantCreatedResponse struct {
	Message    string           `json:"message"`
	Restaurant model.Restaurant `json:"restaurant"`
}

// HandleRestaurants dispatches within the /restaurants/ subtree. The
// literal "search" segment is checked before the segment is read as an
// id, so /restaurants/search never resolves as a restaurant id.
func (h *RestaurantsHandler) HandleRestaurants(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/restaurants/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleCreate(w, r)
		default:
			http.NotFound(w, r)
		}
		return
	}
	if strings.Contains(rest, "/") {
		http.NotFound(w, r)
		return
	}
	if rest == "search" {
		h.handleSearch(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	h.handleGet(w, r, rest)
}

func (h *RestaurantsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, restaurantsResponse{Restaurants: h.deps.ListRestaurants(r.Context())})
}

// handleSearch filters by exact category match. An unknown category is
// an empty result set, not an error.
func (h *RestaurantsHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_restaurants"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error",
			NewKind(op+": missing category", ErrValidation))
		return
	}
	results := h.deps.SearchRestaurants(r.Context(), category)
	writeJSON(w, http.StatusOK, restaurantResultsResponse{Results: results})
}

func (h *RestaurantsHandler) handleGet(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.get_restaurant"
	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
		return
	}
	rec, err := h.deps.GetRestaurant(r.Context(), id)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *RestaurantsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_restaurant"
	q := r.URL.Query()
	name, category, rawRating := q.Get("name"), q.Get("category"), q.Get("rating")
	if name == "" || category == "" || rawRating == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error",
			NewKind(op+": name, category and rating are required", ErrValidation))
		return
	}
	rating, err := strconv.ParseFloat(rawRating, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
		return
	}
	created := h.deps.CreateRestaurant(r.Context(), name, category, rating)
	writeJSON(w, http.StatusOK, restaurantCreatedResponse{
		Message:    "restaurant created",
		Restaurant: created,
	})
}
