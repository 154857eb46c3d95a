// filepath: internal/services/auth/token_service.go
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/shared"
)

// sessionClaims defines the claims for our stateful session token.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

// tokenService implements the TokenService interface.
type tokenService struct {
	cfg  *config.Config
	repo *repository.Repository
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config, repo *repository.Repository) TokenService {
	return &tokenService{cfg: cfg, repo: repo}
}

// hashToken securely hashes a token string (using SHA-256) for database storage.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// Generate creates, signs, and *stores* a new session token. Any previous
// sessions for the user are dropped first, so a fresh login is the only
// live session for that account.
func (s *tokenService) Generate(user *models.User) (string, error) {
	expiry := time.Now().Add(time.Hour * time.Duration(s.cfg.JWT.DurationHours))

	// Use a random ID (jti) for the token to ensure uniqueness
	jtiBytes := make([]byte, 16)
	if _, err := rand.Read(jtiBytes); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	claims := &sessionClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "wardbulletin",
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        hex.EncodeToString(jtiBytes),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	// Store only the hash of the token in the database
	if err := s.repo.DeleteSessionsForUser(user.ID); err != nil {
		return "", fmt.Errorf("failed to clear previous sessions: %w", err)
	}
	if err := s.repo.StoreSession(user.ID, hashToken(signed), expiry); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return signed, nil
}

// Validate checks a session token. It verifies the signature and expiry,
// then re-reads the user so role changes, deletions and approval revocation
// take effect immediately instead of at token expiry.
func (s *tokenService) Validate(tokenString string) (*models.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err // Handles expired tokens as well
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed subject claim: %w", err)
	}

	// Token is valid; re-check approval against the store, not the cache,
	// so a revocation is honored even when this process never saw it.
	user, err := s.repo.GetUserByIDFresh(userID)
	if err != nil {
		return nil, shared.ErrUserNotApproved
	}
	if !user.Approved {
		return nil, shared.ErrUserNotApproved
	}
	return user, nil
}

// Logout invalidates a session token by deleting its hash from the database.
func (s *tokenService) Logout(tokenString string) error {
	return s.repo.DeleteSessionByHash(hashToken(tokenString))
}
