// filepath: internal/repository/session_repo.go
package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// StoreSession saves the hash of a session token to the database.
func (s *Repository) StoreSession(userID int64, tokenHash string, expiry time.Time) error {
	query, args, err := s.Builder.
		Insert("user_sessions").
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiry).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DeleteSessionsForUser revokes all sessions for a specific user. Called on
// every login so at most one session is live per user at issuance time.
func (s *Repository) DeleteSessionsForUser(userID int64) error {
	query, args, err := s.Builder.
		Delete("user_sessions").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DeleteSessionByHash removes a specific session. Deleting a missing row is
// not an error, which makes logout idempotent.
func (s *Repository) DeleteSessionByHash(tokenHash string) error {
	query, args, err := s.Builder.
		Delete("user_sessions").
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// CountSessionsForUser returns the number of live session rows for a user.
func (s *Repository) CountSessionsForUser(userID int64) (int, error) {
	query, args, err := s.Builder.
		Select("COUNT(*)").From("user_sessions").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
