// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hansik/baedal/internal/domain/auth"
	"github.com/hansik/baedal/internal/domain/model"
)

// UserDependencies defines the interface for user-surface operations.
// Deletion is admin-gated, so the admin dependencies are embedded.
type UserDependencies interface {
	AdminDependencies

	ListUsers(ctx context.Context) []model.UserRecord
	GetUser(ctx context.Context, id int) (model.UserRecord, error)
	CreateUser(ctx context.Context, name, email string) model.UserRecord
}

// UsersHandler handles the /users/ subtree.
type UsersHandler struct {
	deps UserDependencies
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps UserDependencies) *UsersHandler {
	return &UsersHandler{deps: deps}
}

type usersResponse struct {
	Users []model.UserRecord `json:"users"`
}

type userCreatedResponse struct {
	Message string           `json:"message"`
	User    model.UserRecord `json:"user"`
}

// HandleUsers dispatches within the /users/ subtree: the collection
// itself (list/create) and single-segment paths (get by id, admin
// delete by username).
func (h *UsersHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/users/")
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
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, rest)
	case http.MethodDelete:
		h.handleDelete(w, r, rest)
	default:
		http.NotFound(w, r)
	}
}

func (h *UsersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, usersResponse{Users: h.deps.ListUsers(r.Context())})
}

func (h *UsersHandler) handleGet(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.get_user"
	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
		return
	}
	u, err := h.deps.GetUser(r.Context(), id)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_user"
	q := r.URL.Query()
	name, email := q.Get("name"), q.Get("email")
	if name == "" || email == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error",
			NewKind(op+": name and email are required", ErrValidation))
		return
	}
	created := h.deps.CreateUser(r.Context(), name, email)
	writeJSON(w, http.StatusOK, userCreatedResponse{
		Message: "user created",
		User:    created,
	})
}

// handleDelete removes a principal by username. The full auth chain runs
// first; only admins may delete.
func (h *UsersHandler) handleDelete(w http.ResponseWriter, r *http.Request, username string) {
	const op = "api.delete_user"
	admin, err := h.deps.Authorize(r.Context(), r.URL.Query().Get("token"), auth.CapManageUsers)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := h.deps.DeletePrincipal(r.Context(), username); err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("administrator %s deleted %s", admin.Username, username),
	})
}
