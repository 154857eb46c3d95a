// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/crypto/bcrypt"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/models"
	"wardbulletin/internal/shared"
)

var userColumns = []string{"id", "username", "email", "password_hash", "full_name", "role", "approved", "created_at"}

// UserCreateArgs is a struct used for creating users in the database layer.
// It is separate from models.User to include the plaintext password for creation.
type UserCreateArgs struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
	Approved bool
}

func scanUser(row sq.RowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Role, &user.Approved, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser hashes the password and inserts a new user row.
func (s *Repository) CreateUser(args *UserCreateArgs) (*models.User, error) {
	logging.Log.Debugf("CreateUser: Hashing password for '%s'", args.Username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(args.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	query, sqlArgs, err := s.Builder.
		Insert("users").
		Columns("username", "email", "password_hash", "full_name", "role", "approved").
		Values(args.Username, args.Email, string(hashedPassword), args.FullName, args.Role, args.Approved).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.DB.Exec(query, sqlArgs...); err != nil {
		if isUniqueViolation(err) {
			return nil, shared.ErrUserExists
		}
		return nil, err
	}

	// lib/pq does not support LastInsertId, so re-read the row by its
	// unique username instead.
	user, err := s.GetUserByUsername(args.Username)
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("CreateUser: User '%s' created with ID %d", user.Username, user.ID)
	return user, nil
}

// CountUsers returns the total number of user rows. Registration uses this
// to decide whether the registrant is the bootstrap admin.
func (s *Repository) CountUsers() (int, error) {
	query, sqlArgs, err := s.Builder.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.DB.QueryRow(query, sqlArgs...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetUserByUsername retrieves a user by their username, using a cache for performance.
func (s *Repository) GetUserByUsername(username string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", username)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByUsername: CACHE MISS for '%s'. Querying DB.", username)
	query, sqlArgs, err := s.Builder.
		Select(userColumns...).From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, err
	}
	user, err := scanUser(s.DB.QueryRow(query, sqlArgs...))
	if err != nil {
		return nil, err
	}

	s.cacheUser(user)
	return user, nil
}

// GetUserByID retrieves a user by their ID, using a cache for performance.
func (s *Repository) GetUserByID(id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_id_%d", id)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByID: CACHE MISS for ID %d. Querying DB.", id)
	return s.GetUserByIDFresh(id)
}

// GetUserByIDFresh retrieves a user by their ID straight from the database,
// never from the cache. Token verification uses it so an approval flip made
// by another process (or by hand) takes effect on the very next request.
// The fresh row still refreshes the cache for other readers.
func (s *Repository) GetUserByIDFresh(id int64) (*models.User, error) {
	query, sqlArgs, err := s.Builder.
		Select(userColumns...).From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	user, err := scanUser(s.DB.QueryRow(query, sqlArgs...))
	if err != nil {
		return nil, err
	}

	s.cacheUser(user)
	return user, nil
}

// GetUsers retrieves all users, newest first.
func (s *Repository) GetUsers() ([]models.User, error) {
	query, sqlArgs, err := s.Builder.
		Select(userColumns...).From("users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(query, sqlArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&user.FullName, &user.Role, &user.Approved, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// SetUserApproved flips the approved flag and returns the fresh row.
func (s *Repository) SetUserApproved(id int64, approved bool) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	query, sqlArgs, err := s.Builder.
		Update("users").Set("approved", approved).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.DB.Exec(query, sqlArgs...); err != nil {
		return nil, err
	}

	s.invalidateUser(user)
	return s.GetUserByID(id)
}

// UpdateUserRole replaces the user's role and returns the fresh row.
// Role validity is the service layer's concern.
func (s *Repository) UpdateUserRole(id int64, role string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	query, sqlArgs, err := s.Builder.
		Update("users").Set("role", role).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := s.DB.Exec(query, sqlArgs...); err != nil {
		return nil, err
	}

	s.invalidateUser(user)
	return s.GetUserByID(id)
}

// UpdateUserPassword re-hashes and stores a new password for a user.
func (s *Repository) UpdateUserPassword(username, password string) error {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return err
	}

	logging.Log.Debugf("UpdateUserPassword: Hashing new password for user '%s'", username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	query, sqlArgs, err := s.Builder.
		Update("users").Set("password_hash", string(hashedPassword)).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(query, sqlArgs...); err != nil {
		return err
	}

	s.invalidateUser(user)
	return nil
}

// DeleteUser removes a user row and all of their sessions.
func (s *Repository) DeleteUser(id int64) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if err := s.DeleteSessionsForUser(id); err != nil {
		return err
	}

	query, sqlArgs, err := s.Builder.
		Delete("users").Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(query, sqlArgs...); err != nil {
		return err
	}

	logging.Log.Debugf("DeleteUser: Invalidating cache for user '%s' (ID: %d)", user.Username, user.ID)
	s.invalidateUser(user)
	return nil
}

func (s *Repository) cacheUser(user *models.User) {
	s.Cache.Set(fmt.Sprintf("user_by_name_%s", user.Username), user, userCacheTTL)
	s.Cache.Set(fmt.Sprintf("user_by_id_%d", user.ID), user, userCacheTTL)
}

func (s *Repository) invalidateUser(user *models.User) {
	s.Cache.Delete(fmt.Sprintf("user_by_name_%s", user.Username))
	s.Cache.Delete(fmt.Sprintf("user_by_id_%d", user.ID))
}
