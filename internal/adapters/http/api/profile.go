// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hansik/baedal/internal/domain/auth"
)

// AuthDependencies defines the interface for authenticated operations.
type AuthDependencies interface {
	Authenticate(ctx context.Context, token string) (auth.Principal, error)
}

// ProfileHandler handles profile requests.
type ProfileHandler struct {
	deps AuthDependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps AuthDependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

type profileResponse struct {
	Message string         `json:"message"`
	Profile auth.Principal `json:"profile"`
}

// HandleGetProfile handles GET /profile?token=... requests. The token
// runs the presence and lookup steps of the auth chain; no role is
// required to view one's own profile.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	p, err := h.deps.Authenticate(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{
		Message: fmt.Sprintf("Welcome, %s!", p.Username),
		Profile: p,
	})
}
