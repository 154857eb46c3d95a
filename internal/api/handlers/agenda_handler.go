// filepath: internal/api/handlers/agenda_handler.go
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

// AgendaSaveRequest is a DTO for saving an agenda document.
type AgendaSaveRequest struct {
	Date string          `json:"date"`
	Data json.RawMessage `json:"data"`
}

// @Summary List saved agendas
// @Description Returns the dates of all saved agendas, newest first.
// @Tags Agendas
// @Produce json
// @Success 200 {array} models.AgendaSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /agendas [get]
func (h *Handlers) GetAgendas(w http.ResponseWriter, r *http.Request) {
	agendas, err := h.Agendas.List()
	if err != nil {
		logging.Log.Errorf("GetAgendas: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get agendas")
		return
	}
	respondWithJSON(w, http.StatusOK, agendas)
}

// @Summary Get an agenda by date
// @Description Returns the stored agenda document for a date.
// @Tags Agendas
// @Produce json
// @Param date path string true "Agenda date (YYYY-MM-DD)"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse "Agenda not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /agendas/{date} [get]
func (h *Handlers) GetAgenda(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	data, err := h.Agendas.Get(date)
	if err != nil {
		if errors.Is(err, shared.ErrAgendaNotFound) {
			respondWithError(w, http.StatusNotFound, "Agenda not found")
			return
		}
		logging.Log.Errorf("GetAgenda: failed for %s: %v", date, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get agenda")
		return
	}
	respondWithJSON(w, http.StatusOK, data)
}

// @Summary Save an agenda
// @Description Creates or replaces the agenda document for a date.
// @Tags Agendas
// @Accept json
// @Produce json
// @Param agenda body AgendaSaveRequest true "Date and agenda document"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /agendas [post]
func (h *Handlers) SaveAgenda(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	var req AgendaSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" {
		respondWithError(w, http.StatusBadRequest, "Date is required")
		return
	}

	if err := h.Agendas.Save(req.Date, req.Data, actor.ID); err != nil {
		switch {
		case errors.Is(err, shared.ErrDateRequired):
			respondWithError(w, http.StatusBadRequest, "Date is required")
		case errors.Is(err, shared.ErrAgendaDataInvalid):
			respondWithError(w, http.StatusBadRequest, "Agenda data must be valid JSON")
		default:
			logging.Log.Errorf("SaveAgenda: failed for %s: %v", req.Date, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to save agenda")
		}
		return
	}

	h.Audit.Record("agenda.save", actor.Username, "agendas", map[string]interface{}{"date": req.Date})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeAgendaSaved, Date: req.Date, Data: req.Data})
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
