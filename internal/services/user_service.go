// filepath: internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"wardbulletin/internal/config"
	"wardbulletin/internal/logging"
	"wardbulletin/internal/models"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/shared"
)

// Compile-time check to ensure interface compliance.
var _ UserService = (*userService)(nil)

// userService handles business logic for account management.
type userService struct {
	Repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *userService {
	return &userService{Repo: repo}
}

// === Pass-through Repository Methods ===

func (s *userService) GetUserByID(id int64) (*models.User, error) {
	return s.Repo.GetUserByID(id)
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	return s.Repo.GetUserByUsername(username)
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.Repo.GetUsers()
}

// === Business Logic Methods ===

// Register creates a new account. The very first account in the system is
// auto-approved and made ADMIN so the instance can bootstrap itself; every
// later registrant starts as an unapproved VIEWER awaiting admin approval.
func (s *userService) Register(args RegisterArgs) (*models.User, bool, error) {
	if args.Username == "" || args.Email == "" || args.Password == "" {
		return nil, false, fmt.Errorf("username, email and password are required")
	}

	count, err := s.Repo.CountUsers()
	if err != nil {
		logging.Log.Errorf("Register: failed to count users: %v", err)
		return nil, false, err
	}
	isFirstUser := count == 0

	role := models.RoleViewer
	if isFirstUser {
		role = models.RoleAdmin
	}

	logging.Log.Debugf("Register: creating user '%s' (first=%v)", args.Username, isFirstUser)
	user, err := s.Repo.CreateUser(&repository.UserCreateArgs{
		Username: args.Username,
		Email:    args.Email,
		Password: args.Password,
		FullName: args.FullName,
		Role:     role,
		Approved: isFirstUser,
	})
	if err != nil {
		if errors.Is(err, shared.ErrUserExists) {
			return nil, false, err
		}
		logging.Log.Errorf("Register: failed to create user '%s': %v", args.Username, err)
		return nil, false, err
	}
	return user, isFirstUser, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials so callers cannot probe which
// usernames exist. Unapproved accounts are rejected before the password
// check, matching the pending-approval message the client shows.
func (s *userService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Approved {
		return nil, shared.ErrAccountPending
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// ApproveUser flips the approval flag, letting a pending registrant log in.
func (s *userService) ApproveUser(id int64) (*models.User, error) {
	return s.Repo.SetUserApproved(id, true)
}

// UpdateUserRole assigns one of the three role literals.
func (s *userService) UpdateUserRole(id int64, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, shared.ErrInvalidRole
	}
	return s.Repo.UpdateUserRole(id, role)
}

// DeleteUser removes an account and its sessions. Admins may not delete
// their own account, so the system cannot lose its last acting admin by
// accident mid-session.
func (s *userService) DeleteUser(actorID, id int64) error {
	if actorID == id {
		return shared.ErrSelfDelete
	}
	logging.Log.Debugf("DeleteUser: deleting user ID %d", id)
	return s.Repo.DeleteUser(id)
}

// EnsureAdminUser creates or resets the 'admin' account when an admin
// password was supplied via flag or environment. This does not interfere
// with first-registrant bootstrapping: it simply counts as the first user.
func (s *userService) EnsureAdminUser(cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	_, err := s.Repo.GetUserByUsername("admin")
	switch {
	case errors.Is(err, shared.ErrUserNotFound):
		_, err = s.Repo.CreateUser(&repository.UserCreateArgs{
			Username: "admin",
			Email:    "admin@localhost",
			Password: cfg.AdminPassword,
			FullName: "Administrator",
			Role:     models.RoleAdmin,
			Approved: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		logging.Log.Info("Created 'admin' user from configured password.")
		return nil
	case err != nil:
		return err
	case cfg.ResetAdminPassword:
		if err := s.Repo.UpdateUserPassword("admin", cfg.AdminPassword); err != nil {
			return fmt.Errorf("failed to reset admin password: %w", err)
		}
		logging.Log.Info("Reset password for 'admin' user.")
		return nil
	default:
		return nil
	}
}
