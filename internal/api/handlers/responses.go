// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"

	"wardbulletin/internal/logging"
)

// ErrorResponse carries a single human-readable error string, matching the
// `{"error": "..."}` shape the bulletin client expects.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body for mutations that return no data.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON marshals the payload and writes it with the given status.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logging.Log.Errorf("Failed to marshal response payload: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
