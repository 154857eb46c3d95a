// filepath: internal/repository/agenda_repo.go
package repository

import (
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"

	"wardbulletin/internal/models"
	"wardbulletin/internal/shared"
)

// ListAgendas returns the saved-agenda summaries, newest date first.
func (s *Repository) ListAgendas() ([]models.AgendaSummary, error) {
	query, args, err := s.Builder.
		Select("date", "created_at").From("agendas").
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agendas := make([]models.AgendaSummary, 0)
	for rows.Next() {
		var a models.AgendaSummary
		if err := rows.Scan(&a.Date, &a.CreatedAt); err != nil {
			return nil, err
		}
		agendas = append(agendas, a)
	}
	return agendas, rows.Err()
}

// GetAgendaData returns the opaque agenda document for a date. When several
// creators saved the same date, the most recently updated document wins.
func (s *Repository) GetAgendaData(date string) (json.RawMessage, error) {
	query, args, err := s.Builder.
		Select("data").From("agendas").
		Where(sq.Eq{"date": date}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := s.DB.QueryRow(query, args...).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrAgendaNotFound
		}
		return nil, err
	}
	return json.RawMessage(data), nil
}

// SaveAgenda upserts an agenda document on its (date, created_by) key,
// stamping updated_by and updated_at on conflict.
func (s *Repository) SaveAgenda(date string, data json.RawMessage, userID int64) error {
	query, args, err := s.Builder.
		Insert("agendas").
		Columns("date", "data", "created_by", "updated_by").
		Values(date, string(data), userID, userID).
		Suffix("ON CONFLICT (date, created_by) DO UPDATE SET data = excluded.data, updated_by = excluded.updated_by, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}
