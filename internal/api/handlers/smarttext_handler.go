// filepath: internal/api/handlers/smarttext_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/realtime"
)

// @Summary Get smart text entries
// @Description Returns the editable boilerplate texts as a key-to-text map.
// @Tags SmartText
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /smart-text [get]
func (h *Handlers) GetSmartText(w http.ResponseWriter, r *http.Request) {
	texts, err := h.SmartText.Texts()
	if err != nil {
		logging.Log.Errorf("GetSmartText: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get smart text")
		return
	}
	respondWithJSON(w, http.StatusOK, texts)
}

// @Summary Update smart text entries
// @Description Overwrites the supplied keys and returns the full updated map. Unknown keys are ignored.
// @Tags SmartText
// @Accept json
// @Produce json
// @Param entries body map[string]string true "Keys to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /smart-text [put]
func (h *Handlers) UpdateSmartText(w http.ResponseWriter, r *http.Request) {
	actor, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}

	var entries map[string]string
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	texts, err := h.SmartText.Update(entries, actor.ID)
	if err != nil {
		logging.Log.Errorf("UpdateSmartText: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update smart text")
		return
	}

	h.Audit.Record("smarttext.update", actor.Username, "smart_text", map[string]interface{}{"keys": len(entries)})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeSmartTextUpdated, SmartText: texts})
	respondWithJSON(w, http.StatusOK, texts)
}
