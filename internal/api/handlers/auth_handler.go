// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/realtime"
	"wardbulletin/internal/services"
	"wardbulletin/internal/shared"
)

// RegisterRequest is the JSON body for the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest is the JSON body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the JSON body returned on successful login or first-user
// registration.
type AuthResponse struct {
	Success          bool        `json:"success"`
	User             interface{} `json:"user"`
	Token            string      `json:"token,omitempty"`
	IsFirstUser      bool        `json:"isFirstUser,omitempty"`
	RequiresApproval bool        `json:"requiresApproval,omitempty"`
}

// @Summary Register a new account
// @Description Creates an account. The first account becomes an approved ADMIN and receives a session token immediately; later accounts await admin approval.
// @Tags Auth
// @Accept   json
// @Produce  json
// @Param   account  body  RegisterRequest  true  "Account details"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Username or email already exists"
// @Failure 500 {object} ErrorResponse "Registration failed"
// @Router /auth/register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	user, isFirstUser, err := h.User.Register(services.RegisterArgs{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		if errors.Is(err, shared.ErrUserExists) {
			respondWithError(w, http.StatusBadRequest, "Username or email already exists")
			return
		}
		logging.Log.Errorf("Register: failed for '%s': %v", req.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.Audit.Record("user.register", user.Username, "users", map[string]interface{}{"user_id": user.ID, "first_user": isFirstUser})
	h.Hub.Broadcast(realtime.Message{Type: realtime.TypeUserRegistered, User: user})

	if isFirstUser {
		token, err := h.Token.Generate(user)
		if err != nil {
			logging.Log.Errorf("Register: token generation failed for '%s': %v", user.Username, err)
			respondWithError(w, http.StatusInternalServerError, "Registration failed")
			return
		}
		respondWithJSON(w, http.StatusOK, AuthResponse{Success: true, User: user, Token: token, IsFirstUser: true})
		return
	}

	respondWithJSON(w, http.StatusOK, AuthResponse{Success: true, User: user, RequiresApproval: true})
}

// @Summary Log in
// @Description Authenticate with username and password to receive a session token. Wrong usernames and wrong passwords are indistinguishable.
// @Tags Auth
// @Accept   json
// @Produce  json
// @Param   credentials  body  LoginRequest  true  "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Account pending approval"
// @Failure 500 {object} ErrorResponse "Login failed"
// @Router /auth/login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.User.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, shared.ErrAccountPending):
			respondWithError(w, http.StatusForbidden, "Account pending approval")
		default:
			logging.Log.Errorf("Login: failed for '%s': %v", req.Username, err)
			respondWithError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	token, err := h.Token.Generate(user)
	if err != nil {
		logging.Log.Errorf("Login: token generation failed for '%s': %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.Audit.Record("user.login", user.Username, "sessions", nil)
	respondWithJSON(w, http.StatusOK, AuthResponse{Success: true, User: user, Token: token})
}

// @Summary Log out
// @Description Invalidates the presented session token.
// @Tags Auth
// @Produce  json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse "Logout failed"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.Token.Logout(tokenString); err != nil {
		logging.Log.Errorf("Logout failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	if user, ok := userFromContext(r); ok {
		h.Audit.Record("user.logout", user.Username, "sessions", nil)
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Get current user
// @Description Returns the authenticated user's details.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
