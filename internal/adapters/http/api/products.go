// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hansik/baedal/internal/domain/model"
	"github.com/hansik/baedal/internal/domain/page"
)

// PageDependencies normalizes raw pagination inputs.
type PageDependencies interface {
	Window(skip, limit int) page.Window
	DefaultLimit() int
}

// ProductDependencies defines the interface for catalog operations.
type ProductDependencies interface {
	PageDependencies

	ListProducts(ctx context.Context, w page.Window) (int, []model.Product)
	SearchProducts(ctx context.Context, keyword string, w page.Window) (int, []model.Product)
}

// ProductsHandler handles paginated catalog listings.
type ProductsHandler struct {
	deps ProductDependencies
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(deps ProductDependencies) *ProductsHandler {
	return &ProductsHandler{deps: deps}
}

type productsResponse struct {
	Total    int             `json:"total"`
	Skip     int             `json:"skip"`
	Limit    int             `json:"limit"`
	Products []model.Product `json:"products"`
}

// HandleGetProducts handles GET /products?skip=N&limit=M requests.
func (h *ProductsHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_products"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	window, err := parseWindow(r, h.deps)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", Wrap(op, err))
		return
	}
	total, products := h.deps.ListProducts(r.Context(), window)
	writeJSON(w, http.StatusOK, productsResponse{
		Total:    total,
		Skip:     window.Skip,
		Limit:    window.Limit,
		Products: products,
	})
}

// parseWindow reads optional skip/limit query parameters, substituting
// defaults for absent values, and returns the normalized window. A
// non-integer value is a validation failure, not a silent default.
func parseWindow(r *http.Request, deps PageDependencies) (page.Window, error) {
	q := r.URL.Query()

	skip := page.DefaultSkip
	if raw := q.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page.Window{}, WrapKind("parse skip", ErrValidation, err)
		}
		skip = n
	}

	limit := deps.DefaultLimit()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page.Window{}, WrapKind("parse limit", ErrValidation, err)
		}
		limit = n
	}

	return deps.Window(skip, limit), nil
}
