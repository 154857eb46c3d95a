// filepath: internal/api/handlers/user_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/realtime"
	"wardbulletin/internal/shared"
)

// RoleUpdateRequest is a DTO for changing a user's role.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// userIDFromVars parses the {id} path variable.
func userIDFromVars(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// @Summary Get all users
// @Description Retrieves all accounts, newest first. Admin only.
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	logging.Log.Debug("GetUsers: Handler started.")
	users, err := h.User.GetUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get users")
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// @Summary Approve a pending user
// @Description Marks a registered account as approved so it can log in. Admin only.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/approve [put]
func (h *Handlers) ApproveUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromVars(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.User.ApproveUser(id)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		logging.Log.Errorf("ApproveUser: failed for ID %d: %v", id, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to approve user")
		return
	}

	if actor, ok := userFromContext(r); ok {
		h.Audit.Record("user.approve", actor.Username, "users", map[string]interface{}{"user_id": id})
	}
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeUserApproved, User: user})
	respondWithJSON(w, http.StatusOK, user)
}

// @Summary Change a user's role
// @Description Assigns ADMIN, EDITOR or VIEWER. Takes effect on the user's next request. Admin only.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param role body RoleUpdateRequest true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *Handlers) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromVars(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.User.UpdateUserRole(id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidRole):
			respondWithError(w, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, shared.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		default:
			logging.Log.Errorf("UpdateUserRole: failed for ID %d: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to update user role")
		}
		return
	}

	if actor, ok := userFromContext(r); ok {
		h.Audit.Record("user.role_update", actor.Username, "users", map[string]interface{}{"user_id": id, "role": req.Role})
	}
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeUserRoleUpdated, User: user})
	respondWithJSON(w, http.StatusOK, user)
}

// @Summary Remove a user
// @Description Deletes an account and its sessions. Admins cannot delete their own account. Admin only.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Cannot delete your own account"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	id, err := userIDFromVars(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.User.DeleteUser(actor.ID, id); err != nil {
		switch {
		case errors.Is(err, shared.ErrSelfDelete):
			respondWithError(w, http.StatusBadRequest, "Cannot delete your own account")
		case errors.Is(err, shared.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		default:
			logging.Log.Errorf("DeleteUser: failed for ID %d: %v", id, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to remove user")
		}
		return
	}

	h.Audit.Record("user.delete", actor.Username, "users", map[string]interface{}{"user_id": id})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeUserRemoved, UserID: id})
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
