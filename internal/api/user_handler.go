package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fellowtravellers/apartments-api/internal/api/shared"
	"github.com/fellowtravellers/apartments-api/internal/domain"
	"github.com/fellowtravellers/apartments-api/internal/store"
)

// PromoteAdminRequest carries the email of the user to promote.
type PromoteAdminRequest struct {
	Email string `json:"email"`
}

// AdminStatusResponse reports whether a user holds the admin role.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// UserHandler handles user API requests, including the one privileged
// operation of the service: admin promotion.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users requests, inserting the body as a new user
// record and returning the store's insert result.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := shared.DecodeJSON(r, &user); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.users.Create(r.Context(), &user)
	if err != nil {
		slog.Error("failed to create user", "error", err, "email", user.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Upsert handles PUT /users requests, replacing the stored fields of the
// record with the body's email or inserting a new one. Submitting the same
// email twice leaves exactly one record.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := shared.DecodeJSON(r, &user); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.users.Upsert(r.Context(), &user)
	if err != nil {
		slog.Error("failed to upsert user", "error", err, "email", user.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to save user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// PromoteAdmin handles PUT /users/admin requests.
//
// The identity middleware may have attached a verified principal email.
// Without one the request is rejected with 401 before any store access.
// With one, the requester's own record must carry the admin role; a missing
// record or a non-admin role is a 403.
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	requester, ok := shared.GetPrincipalEmail(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "You do not have permission to perform this operation")
		return
	}

	var req PromoteAdminRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Target email is required")
		return
	}

	account, err := h.users.GetByEmail(r.Context(), requester)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		slog.Error("failed to load requester account", "error", err, "email", requester)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to verify requester")
		return
	}
	if !account.IsAdmin() {
		shared.RespondWithError(w, r, http.StatusForbidden, "Admin role required")
		return
	}

	result, err := h.users.PromoteToAdmin(r.Context(), req.Email)
	if err != nil {
		slog.Error("failed to promote user", "error", err, "email", req.Email, "requester", requester)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to promote user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// AdminStatus handles GET /users/{email} requests, reporting whether the
// user holds the admin role. Unknown users are simply not admins.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		slog.Error("failed to load user", "error", err, "email", email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to load user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdminStatusResponse{Admin: user.IsAdmin()})
}
