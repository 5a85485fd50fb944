// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/hansik/baedal/internal/domain/model"
)

// SearchHandler handles keyword search over the catalog, reusing the
// same pagination normalization as the plain listing.
type SearchHandler struct {
	deps ProductDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps ProductDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

type searchResponse struct {
	Keyword      string          `json:"keyword"`
	TotalResults int             `json:"total_results"`
	Skip         int             `json:"skip"`
	Limit        int             `json:"limit"`
	Results      []model.Product `json:"results"`
}

// HandleSearch handles GET /search?keyword=...&skip=N&limit=M requests.
// The window applies to the filtered sequence; total_results counts all
// matches regardless of the page.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_products"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", NewKind(op+": missing keyword", ErrValidation))
		return
	}
	window, err := parseWindow(r, h.deps)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", Wrap(op, err))
		return
	}
	total, results := h.deps.SearchProducts(r.Context(), keyword, window)
	writeJSON(w, http.StatusOK, searchResponse{
		Keyword:      keyword,
		TotalResults: total,
		Skip:         window.Skip,
		Limit:        window.Limit,
		Results:      results,
	})
}
