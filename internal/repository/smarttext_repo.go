// filepath: internal/repository/smarttext_repo.go
package repository

import (
	sq "github.com/Masterminds/squirrel"
)

// GetSmartText returns every smart-text template keyed by its text key.
func (s *Repository) GetSmartText() (map[string]string, error) {
	query, args, err := s.Builder.
		Select("text_key", "content").From("smart_text").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	texts := make(map[string]string)
	for rows.Next() {
		var key, content string
		if err := rows.Scan(&key, &content); err != nil {
			return nil, err
		}
		texts[key] = content
	}
	return texts, rows.Err()
}

// UpdateSmartText overwrites the content of the given keys. The key set is
// fixed by migration; unknown keys update nothing and are silently ignored.
func (s *Repository) UpdateSmartText(entries map[string]string, updatedBy int64) error {
	for key, content := range entries {
		query, args, err := s.Builder.
			Update("smart_text").
			Set("content", content).
			Set("updated_by", updatedBy).
			Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
			Where(sq.Eq{"text_key": key}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := s.DB.Exec(query, args...); err != nil {
			return err
		}
	}
	return nil
}
