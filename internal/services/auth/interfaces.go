// filepath: internal/services/auth/interfaces.go
package auth

import "wardbulletin/internal/models"

// TokenService defines the contract for JWT session operations.
type TokenService interface {
	Generate(user *models.User) (token string, err error)
	Validate(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}
