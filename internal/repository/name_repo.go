// filepath: internal/repository/name_repo.go
package repository

import (
	sq "github.com/Masterminds/squirrel"

	"wardbulletin/internal/models"
	"wardbulletin/internal/shared"
)

// GetNameGroups returns every stored name keyed by category. All four
// categories are always present, even when empty, so clients can bind the
// map directly to the form.
func (s *Repository) GetNameGroups() (map[string][]string, error) {
	groups := make(map[string][]string, len(models.NameCategories))
	for _, category := range models.NameCategories {
		groups[category] = []string{}
	}

	query, args, err := s.Builder.
		Select("category", "name").From("name_groups").
		OrderBy("category", "name").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category, name string
		if err := rows.Scan(&category, &name); err != nil {
			return nil, err
		}
		groups[category] = append(groups[category], name)
	}
	return groups, rows.Err()
}

// AddName inserts a name into a category. The (category, name) unique
// constraint settles duplicate races: one insert wins, the other reports
// ErrNameExists.
func (s *Repository) AddName(category, name string, createdBy int64) error {
	query, args, err := s.Builder.
		Insert("name_groups").
		Columns("category", "name", "created_by").
		Values(category, name, createdBy).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(query, args...); err != nil {
		if isUniqueViolation(err) {
			return shared.ErrNameExists
		}
		return err
	}
	return nil
}

// RemoveName deletes a name from a category. Missing rows are not an error.
func (s *Repository) RemoveName(category, name string) error {
	query, args, err := s.Builder.
		Delete("name_groups").
		Where(sq.Eq{"category": category, "name": name}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}
