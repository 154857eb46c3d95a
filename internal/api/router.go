// filepath: internal/api/router.go
package api

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"wardbulletin/internal/api/handlers"
	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
	"wardbulletin/internal/services/auth"
)

// SetupRouter configures the main router and its sub-routers.
// It sets up the public endpoints, the authenticated API and the
// role-restricted mutation routes, then wraps everything in CORS and
// request logging.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, AccessLogMiddleware)

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public Auth Endpoints (not protected by AuthMiddleware)
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	// Websocket endpoint. Clients connect before logging in so the login
	// page itself refreshes when an admin approves the account.
	r.HandleFunc("/api/ws", h.Hub.HandleConnection)

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.AuthMiddleware)

	apiRouter.HandleFunc("/auth/logout", h.Logout).Methods("POST")
	apiRouter.HandleFunc("/auth/me", h.GetMe).Methods("GET")

	// Attach resource-specific routes
	addBulletinRoutes(apiRouter, h, am)
	addAgendaRoutes(apiRouter, h, am)
	addUserRoutes(apiRouter, h, am)

	// CORS for the browser frontend
	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{cfg.Server.CORSOrigin}),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	return cors(r)
}

// addBulletinRoutes configures routes for names, hymns and smart text.
// Reads require any authenticated user; writes require ADMIN or EDITOR.
func addBulletinRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	r.HandleFunc("/names", h.GetNames).Methods("GET")
	r.HandleFunc("/hymns", h.GetHymns).Methods("GET")
	r.HandleFunc("/smart-text", h.GetSmartText).Methods("GET")

	editRouter := r.PathPrefix("").Subrouter()
	editRouter.Use(am.RoleMiddleware(models.RoleAdmin, models.RoleEditor))
	editRouter.HandleFunc("/names", h.AddName).Methods("POST")
	editRouter.HandleFunc("/names/{category}/{name}", h.RemoveName).Methods("DELETE")
	editRouter.HandleFunc("/hymns", h.AddHymn).Methods("POST")
	editRouter.HandleFunc("/hymns/{number}", h.RemoveHymn).Methods("DELETE")
	editRouter.HandleFunc("/smart-text", h.UpdateSmartText).Methods("PUT")
}

// addAgendaRoutes configures routes for saved agendas.
func addAgendaRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	r.HandleFunc("/agendas", h.GetAgendas).Methods("GET")
	r.HandleFunc("/agendas/{date}", h.GetAgenda).Methods("GET")

	editRouter := r.PathPrefix("").Subrouter()
	editRouter.Use(am.RoleMiddleware(models.RoleAdmin, models.RoleEditor))
	editRouter.HandleFunc("/agendas", h.SaveAgenda).Methods("POST")
}

// addUserRoutes configures routes for administrative actions on users.
func addUserRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("").Subrouter()
	adminRouter.Use(am.RoleMiddleware(models.RoleAdmin))
	adminRouter.HandleFunc("/users", h.GetUsers).Methods("GET")
	adminRouter.HandleFunc("/users/{id}/approve", h.ApproveUser).Methods("PUT")
	adminRouter.HandleFunc("/users/{id}/role", h.UpdateUserRole).Methods("PUT")
	adminRouter.HandleFunc("/users/{id}", h.DeleteUser).Methods("DELETE")
}
