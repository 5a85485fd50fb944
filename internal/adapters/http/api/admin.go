// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hansik/baedal/internal/domain/auth"
)

// AdminDependencies defines the interface for admin-gated operations.
type AdminDependencies interface {
	Authorize(ctx context.Context, token string, c auth.Capability) (auth.Principal, error)
	DeletePrincipal(ctx context.Context, username string) error
}

// AdminHandler handles the admin panel route.
type AdminHandler struct {
	deps AdminDependencies
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(deps AdminDependencies) *AdminHandler {
	return &AdminHandler{deps: deps}
}

type adminResponse struct {
	Message    string `json:"message"`
	AdminPanel string `json:"admin_panel"`
}

// HandleGetAdmin handles GET /admin?token=... requests. The full chain
// runs: presence, lookup, then the admin capability check, so a valid
// non-admin token yields 403 rather than 401.
func (h *AdminHandler) HandleGetAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	p, err := h.deps.Authorize(r.Context(), r.URL.Query().Get("token"), auth.CapAdminPanel)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{
		Message:    fmt.Sprintf("Welcome, administrator %s!", p.Username),
		AdminPanel: "all permissions granted",
	})
}
