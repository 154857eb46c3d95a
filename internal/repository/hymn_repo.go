// filepath: internal/repository/hymn_repo.go
package repository

import (
	sq "github.com/Masterminds/squirrel"

	"wardbulletin/internal/shared"
)

// GetHymns returns the custom hymn map keyed by number. Numbers are stored
// as text but ordered numerically so the client picker stays sorted.
func (s *Repository) GetHymns() (map[string]string, error) {
	query, args, err := s.Builder.
		Select("number", "title").From("custom_hymns").
		OrderBy("CAST(number AS INTEGER)").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hymns := make(map[string]string)
	for rows.Next() {
		var number, title string
		if err := rows.Scan(&number, &title); err != nil {
			return nil, err
		}
		hymns[number] = title
	}
	return hymns, rows.Err()
}

// AddHymn inserts a custom hymn. Duplicate numbers report ErrHymnExists.
func (s *Repository) AddHymn(number, title string, createdBy int64) error {
	query, args, err := s.Builder.
		Insert("custom_hymns").
		Columns("number", "title", "created_by").
		Values(number, title, createdBy).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(query, args...); err != nil {
		if isUniqueViolation(err) {
			return shared.ErrHymnExists
		}
		return err
	}
	return nil
}

// RemoveHymn deletes a custom hymn by number. Missing rows are not an error.
func (s *Repository) RemoveHymn(number string) error {
	query, args, err := s.Builder.
		Delete("custom_hymns").
		Where(sq.Eq{"number": number}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}
