// filepath: internal/api/handlers/main.go
package handlers

import (
	"net/http"
	"time"

	"wardbulletin/internal/audit"
	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
	"wardbulletin/internal/realtime"
	"wardbulletin/internal/services"
	"wardbulletin/internal/services/auth"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	User      services.UserService
	Token     auth.TokenService
	Names     services.NameService
	Hymns     services.HymnService
	SmartText services.SmartTextService
	Agendas   services.AgendaService

	Hub   *realtime.Hub
	Audit audit.Auditor

	Cfg       *config.Config
	Version   string
	StartTime time.Time
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	user services.UserService,
	token auth.TokenService,
	names services.NameService,
	hymns services.HymnService,
	smartText services.SmartTextService,
	agendas services.AgendaService,
	hub *realtime.Hub,
	auditor audit.Auditor,
	cfg *config.Config,
	version string,
) *Handlers {
	return &Handlers{
		User:      user,
		Token:     token,
		Names:     names,
		Hymns:     hymns,
		SmartText: smartText,
		Agendas:   agendas,
		Hub:       hub,
		Audit:     auditor,
		Cfg:       cfg,
		Version:   version,
		StartTime: time.Now(),
	}
}

// userFromContext pulls the authenticated user that AuthMiddleware stored.
func userFromContext(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value("user").(*models.User)
	return user, ok
}
