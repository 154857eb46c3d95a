// filepath: internal/services/auth/auth_test.go
package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/services"
	"wardbulletin/internal/services/auth"
)

// setupMiddlewareTest creates a temporary database with one user per role
// and returns tokens for each.
func setupMiddlewareTest(t *testing.T) (*auth.Middleware, map[string]string, func()) {
	t.Helper()
	const dbPath = "test_auth.db"
	os.Remove(dbPath)

	testCfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: dbPath},
		JWT:      config.JWTConfig{DurationHours: 24},
		JWTSecret: "middleware-test-secret",
	}

	repo, err := repository.NewRepository(testCfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	userSvc := services.NewUserService(repo)
	tokenSvc := auth.NewTokenService(testCfg, repo)

	tokens := make(map[string]string)
	for _, role := range []string{models.RoleAdmin, models.RoleEditor, models.RoleViewer} {
		user, err := repo.CreateUser(&repository.UserCreateArgs{
			Username: "user_" + role,
			Email:    role + "@example.org",
			Password: "password",
			Role:     role,
			Approved: true,
		})
		if err != nil {
			t.Fatalf("Failed to create %s user: %v", role, err)
		}
		token, err := tokenSvc.Generate(user)
		if err != nil {
			t.Fatalf("Failed to generate token for %s: %v", role, err)
		}
		tokens[role] = token
	}

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}
	return auth.NewMiddleware(userSvc, tokenSvc), tokens, cleanup
}

// TestAuthMiddleware tests the authentication and authorization middleware.
func TestAuthMiddleware(t *testing.T) {
	am, tokens, cleanup := setupMiddlewareTest(t)
	defer cleanup()

	r := mux.NewRouter()
	protectedHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Handle("/protected", am.AuthMiddleware(protectedHandler))
	r.Handle("/editors", am.AuthMiddleware(am.RoleMiddleware(models.RoleAdmin, models.RoleEditor)(protectedHandler)))
	r.Handle("/admins", am.AuthMiddleware(am.RoleMiddleware(models.RoleAdmin)(protectedHandler)))

	ts := httptest.NewServer(r)
	defer ts.Close()

	tests := []struct {
		name           string
		path           string
		authHeader     string
		expectedStatus int
		expectedError  string
	}{
		{"No Header", "/protected", "", http.StatusUnauthorized, "Access token required"},
		{"Wrong Scheme", "/protected", "Basic dXNlcjpwdw==", http.StatusUnauthorized, "Invalid authorization header format"},
		{"Garbage Token", "/protected", "Bearer not.a.token", http.StatusForbidden, "Invalid token"},
		{"Valid Viewer", "/protected", "Bearer " + tokens[models.RoleViewer], http.StatusOK, ""},
		{"Viewer On Editor Route", "/editors", "Bearer " + tokens[models.RoleViewer], http.StatusForbidden, "Insufficient permissions"},
		{"Editor On Editor Route", "/editors", "Bearer " + tokens[models.RoleEditor], http.StatusOK, ""},
		{"Editor On Admin Route", "/admins", "Bearer " + tokens[models.RoleEditor], http.StatusForbidden, "Insufficient permissions"},
		{"Admin On Admin Route", "/admins", "Bearer " + tokens[models.RoleAdmin], http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", ts.URL+tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			if tc.expectedError != "" {
				var body map[string]string
				assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tc.expectedError, body["error"])
			}
		})
	}
}
