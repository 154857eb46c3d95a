// filepath: internal/services/hymn_service.go
package services

import (
	"strings"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/shared"
)

var _ HymnService = (*hymnService)(nil)

// hymnService handles business logic for ward-specific custom hymns that
// supplement the standard hymnal.
type hymnService struct {
	Repo *repository.Repository
}

// NewHymnService creates a new HymnService.
func NewHymnService(repo *repository.Repository) *hymnService {
	return &hymnService{Repo: repo}
}

func (s *hymnService) Hymns() (map[string]string, error) {
	return s.Repo.GetHymns()
}

// Add registers a custom hymn under its number and returns the fresh
// number-to-title snapshot. Duplicate numbers are rejected.
func (s *hymnService) Add(number, title string, actorID int64) (map[string]string, error) {
	number = strings.TrimSpace(number)
	title = strings.TrimSpace(title)
	if number == "" || title == "" {
		return nil, shared.ErrHymnFieldsRequired
	}

	if err := s.Repo.AddHymn(number, title, actorID); err != nil {
		return nil, err
	}
	logging.Log.Debugf("HymnService: added hymn %s '%s'", number, title)
	return s.Repo.GetHymns()
}

// Remove deletes a custom hymn by number and returns the fresh snapshot.
// Removing an unknown number is not an error.
func (s *hymnService) Remove(number string, actorID int64) (map[string]string, error) {
	if err := s.Repo.RemoveHymn(number); err != nil {
		return nil, err
	}
	logging.Log.Debugf("HymnService: removed hymn %s", number)
	return s.Repo.GetHymns()
}
