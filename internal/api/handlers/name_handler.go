// filepath: internal/api/handlers/name_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/realtime"
	"wardbulletin/internal/shared"
)

// NameRequest is a DTO for adding a name to a category.
type NameRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// @Summary Get name groups
// @Description Returns all saved names grouped by category. Every category key is always present.
// @Tags Names
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /names [get]
func (h *Handlers) GetNames(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Names.Groups()
	if err != nil {
		logging.Log.Errorf("GetNames: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get names")
		return
	}
	respondWithJSON(w, http.StatusOK, groups)
}

// @Summary Add a name
// @Description Adds a name to a category and returns the updated groups.
// @Tags Names
// @Accept json
// @Produce json
// @Param name body NameRequest true "Category and name"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} ErrorResponse "Invalid category / duplicate name"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /names [post]
func (h *Handlers) AddName(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	groups, err := h.Names.Add(req.Category, req.Name, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNameRequired):
			respondWithError(w, http.StatusBadRequest, "Name is required")
		case errors.Is(err, shared.ErrInvalidCategory):
			respondWithError(w, http.StatusBadRequest, "Invalid category")
		case errors.Is(err, shared.ErrNameExists):
			respondWithError(w, http.StatusBadRequest, "Name already exists in this category")
		default:
			logging.Log.Errorf("AddName: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to add name")
		}
		return
	}

	h.Audit.Record("name.add", actor.Username, "names", map[string]interface{}{"category": req.Category, "name": req.Name})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeNamesUpdated, NameGroups: groups})
	respondWithJSON(w, http.StatusOK, groups)
}

// @Summary Remove a name
// @Description Removes a name from a category and returns the updated groups. Removing an absent name is not an error.
// @Tags Names
// @Produce json
// @Param category path string true "Category"
// @Param name path string true "Name"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} ErrorResponse "Invalid category"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /names/{category}/{name} [delete]
func (h *Handlers) RemoveName(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	vars := mux.Vars(r)
	groups, err := h.Names.Remove(vars["category"], vars["name"], actor.ID)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCategory) {
			respondWithError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		logging.Log.Errorf("RemoveName: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to remove name")
		return
	}

	h.Audit.Record("name.remove", actor.Username, "names", map[string]interface{}{"category": vars["category"], "name": vars["name"]})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeNamesUpdated, NameGroups: groups})
	respondWithJSON(w, http.StatusOK, groups)
}
