// internal/api/handlers/health_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"wardbulletin/internal/models"
)

// HealthCheck is a simple public endpoint to confirm the server is running.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// @Summary Get service information
// @Description Retrieves the service name, software version and uptime. This is a public endpoint.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Info
// @Router /info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.Info{
		ServiceName: "wardbulletin",
		Version:     h.Version,
		UptimeSince: h.StartTime,
	})
}
