// filepath: internal/api/handlers/hymn_handler.go
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

// HymnRequest is a DTO for adding a custom hymn.
type HymnRequest struct {
	Number string `json:"number"`
	Title  string `json:"title"`
}

// @Summary Get custom hymns
// @Description Returns all custom hymns as a number-to-title map.
// @Tags Hymns
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hymns [get]
func (h *Handlers) GetHymns(w http.ResponseWriter, r *http.Request) {
	hymns, err := h.Hymns.Hymns()
	if err != nil {
		logging.Log.Errorf("GetHymns: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get hymns")
		return
	}
	respondWithJSON(w, http.StatusOK, hymns)
}

// @Summary Add a custom hymn
// @Description Registers a hymn under its number and returns the updated map.
// @Tags Hymns
// @Accept json
// @Produce json
// @Param hymn body HymnRequest true "Hymn number and title"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Hymn number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hymns [post]
func (h *Handlers) AddHymn(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	var req HymnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hymns, err := h.Hymns.Add(req.Number, req.Title, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrHymnFieldsRequired):
			respondWithError(w, http.StatusBadRequest, "Number and title are required")
		case errors.Is(err, shared.ErrHymnExists):
			respondWithError(w, http.StatusBadRequest, "Hymn number already exists")
		default:
			logging.Log.Errorf("AddHymn: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to add hymn")
		}
		return
	}

	h.Audit.Record("hymn.add", actor.Username, "hymns", map[string]interface{}{"number": req.Number, "title": req.Title})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeHymnsUpdated, Hymns: hymns})
	respondWithJSON(w, http.StatusOK, hymns)
}

// @Summary Remove a custom hymn
// @Description Deletes a hymn by number and returns the updated map. Removing an unknown number is not an error.
// @Tags Hymns
// @Produce json
// @Param number path string true "Hymn number"
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hymns/{number} [delete]
func (h *Handlers) RemoveHymn(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	number := mux.Vars(r)["number"]
	hymns, err := h.Hymns.Remove(number, actor.ID)
	if err != nil {
		logging.Log.Errorf("RemoveHymn: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to remove hymn")
		return
	}

	h.Audit.Record("hymn.remove", actor.Username, "hymns", map[string]interface{}{"number": number})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeHymnsUpdated, Hymns: hymns})
	respondWithJSON(w, http.StatusOK, hymns)
}
