// filepath: internal/api/handlers/smarttext_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"wardbulletin/internal/models"
)

// smartTextRouter wires the smart-text routes with an EDITOR user in the context.
func smartTextRouter(h *Handlers) (*mux.Router, *models.User) {
	editor := &models.User{ID: 3, Username: "clerk", Role: models.RoleEditor, Approved: true}
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), "user", editor)))
		})
	})
	r.HandleFunc("/api/smart-text", h.GetSmartText).Methods("GET")
	r.HandleFunc("/api/smart-text", h.UpdateSmartText).Methods("PUT")
	return r, editor
}

func TestGetSmartText(t *testing.T) {
	h, m := newTestHandlers()
	r, _ := smartTextRouter(h)

	m.SmartText.On("Texts").Return(map[string]string{
		"openingText":      "",
		"reverenceText":    "Please silence your phones.",
		"appreciationText": "Thank you for joining us.",
	}, nil)

	req := httptest.NewRequest("GET", "/api/smart-text", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var texts map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &texts))
	assert.Len(t, texts, 3)
	assert.Equal(t, "Please silence your phones.", texts["reverenceText"])
}

func TestUpdateSmartText(t *testing.T) {
	h, m := newTestHandlers()
	r, editor := smartTextRouter(h)

	entries := map[string]string{"openingText": "Welcome to sacrament meeting."}
	updated := map[string]string{
		"openingText":      "Welcome to sacrament meeting.",
		"reverenceText":    "Please silence your phones.",
		"appreciationText": "Thank you for joining us.",
	}
	m.SmartText.On("Update", entries, editor.ID).Return(updated, nil)

	body := `{"openingText":"Welcome to sacrament meeting."}`
	req := httptest.NewRequest("PUT", "/api/smart-text", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var texts map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &texts))
	assert.Equal(t, updated, texts)
	m.SmartText.AssertExpectations(t)
}

func TestUpdateSmartText_InvalidBody(t *testing.T) {
	h, _ := newTestHandlers()
	r, _ := smartTextRouter(h)

	req := httptest.NewRequest("PUT", "/api/smart-text", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp map[string]string
	json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.Equal(t, "Invalid request body", resp["error"])
}
