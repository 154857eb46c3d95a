// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/models"
	"wardbulletin/internal/services"
	"wardbulletin/internal/shared"
)

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware provides authentication and authorization middleware.
type Middleware struct {
	User  services.UserService
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(user services.UserService, token TokenService) *Middleware {
	return &Middleware{
		User:  user,
		Token: token,
	}
}

// AuthMiddleware is a middleware function that checks for a valid JWT Bearer token.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Access token required")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := m.Token.Validate(tokenString)
		if err != nil {
			logging.Log.Warnf("AuthMiddleware: Invalid Bearer token: %v", err)
			if errors.Is(err, shared.ErrUserNotApproved) {
				writeError(w, http.StatusForbidden, "User not found or not approved")
			} else {
				writeError(w, http.StatusForbidden, "Invalid token")
			}
			return
		}

		// Add the user to the context for handlers downstream
		ctx := context.WithValue(r.Context(), "user", user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleMiddleware is a middleware function that checks if the user holds one
// of the allowed roles.
func (m *Middleware) RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value("user").(*models.User)
			if !ok {
				logging.Log.Warnf("RoleMiddleware: No user found in context for %s", r.URL.Path)
				writeError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			for _, role := range allowedRoles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logging.Log.Warnf("RoleMiddleware: Access DENIED for user '%s' (role: %s) on %s", user.Username, user.Role, r.URL.Path)
			writeError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}
