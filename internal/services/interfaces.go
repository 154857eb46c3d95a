// filepath: internal/services/interfaces.go
package services

import (
	"encoding/json"

	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
)

// RegisterArgs carries a registration request into the user service.
type RegisterArgs struct {
	Username string
	Email    string
	Password string
	FullName string
}

// UserService defines the contract for account management.
type UserService interface {
	// Register creates a new account. isFirstUser reports whether the
	// registrant became the auto-approved bootstrap admin.
	Register(args RegisterArgs) (user *models.User, isFirstUser bool, err error)
	// Authenticate checks credentials and the approval gate. Unknown
	// usernames and wrong passwords return the same error.
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers() ([]models.User, error)
	ApproveUser(id int64) (*models.User, error)
	UpdateUserRole(id int64, role string) (*models.User, error)
	// DeleteUser removes a user; an actor may not delete themselves.
	DeleteUser(actorID, id int64) error
	EnsureAdminUser(cfg *config.Config) error
}

// NameService defines the contract for the ward name lists.
type NameService interface {
	Groups() (map[string][]string, error)
	Add(category, name string, actorID int64) (map[string][]string, error)
	Remove(category, name string, actorID int64) (map[string][]string, error)
}

// HymnService defines the contract for custom hymn numbers.
type HymnService interface {
	Hymns() (map[string]string, error)
	Add(number, title string, actorID int64) (map[string]string, error)
	Remove(number string, actorID int64) (map[string]string, error)
}

// SmartTextService defines the contract for the boilerplate templates.
type SmartTextService interface {
	Texts() (map[string]string, error)
	Update(entries map[string]string, actorID int64) (map[string]string, error)
}

// AgendaService defines the contract for saved weekly programs.
type AgendaService interface {
	List() ([]models.AgendaSummary, error)
	Get(date string) (json.RawMessage, error)
	Save(date string, data json.RawMessage, actorID int64) error
}
