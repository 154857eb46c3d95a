// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"encoding/json"
	"time"
)

// Roles a user can hold. Registration assigns VIEWER unless the user is the
// very first one in the system, which becomes the bootstrap ADMIN.
const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

// ValidRole reports whether s is one of the three known role literals.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleEditor || s == RoleViewer
}

// NameCategories are the four fixed name-group categories of the bulletin
// form. Anything else is rejected with a validation error.
var NameCategories = []string{"presiding", "conducting", "chorister", "organist"}

// ValidCategory reports whether c is a known name-group category.
func ValidCategory(c string) bool {
	for _, known := range NameCategories {
		if c == known {
			return true
		}
	}
	return false
}

// User represents an account row. The password hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a persisted session token record. The server trusts the signed
// token itself for verification; this row exists so logout and re-login can
// revoke at issuance time.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AgendaSummary is one entry of the saved-agendas listing.
type AgendaSummary struct {
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Agenda is a stored weekly program. Data is an opaque client-defined JSON
// document; the server never validates its interior.
type Agenda struct {
	ID        int64           `json:"id"`
	Date      string          `json:"date"`
	Data      json.RawMessage `json:"data"`
	CreatedBy int64           `json:"created_by"`
	UpdatedBy int64           `json:"updated_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}
