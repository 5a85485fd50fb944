// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// RootHandler serves the public landing route.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleRoot handles GET / requests. It owns the catch-all pattern, so
// any path that reached no other route 404s here.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Welcome! You can browse without logging in.",
	})
}
