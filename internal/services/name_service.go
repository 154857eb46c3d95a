// filepath: internal/services/name_service.go
package services

import (
	"strings"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/models"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/shared"
)

var _ NameService = (*nameService)(nil)

// nameService handles business logic for the reusable name lists shown in
// the agenda editor (presiding, conducting, chorister, organist).
type nameService struct {
	Repo *repository.Repository
}

// NewNameService creates a new NameService.
func NewNameService(repo *repository.Repository) *nameService {
	return &nameService{Repo: repo}
}

func (s *nameService) Groups() (map[string][]string, error) {
	return s.Repo.GetNameGroups()
}

// Add inserts a name into a category and returns the fresh grouped snapshot.
func (s *nameService) Add(category, name string, actorID int64) (map[string][]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrNameRequired
	}
	if !models.ValidCategory(category) {
		return nil, shared.ErrInvalidCategory
	}

	if err := s.Repo.AddName(category, name, actorID); err != nil {
		return nil, err
	}
	logging.Log.Debugf("NameService: added '%s' to category '%s'", name, category)
	return s.Repo.GetNameGroups()
}

// Remove deletes a name from a category and returns the fresh grouped
// snapshot. Removing a name that is not present is not an error.
func (s *nameService) Remove(category, name string, actorID int64) (map[string][]string, error) {
	if !models.ValidCategory(category) {
		return nil, shared.ErrInvalidCategory
	}

	if err := s.Repo.RemoveName(category, name); err != nil {
		return nil, err
	}
	logging.Log.Debugf("NameService: removed '%s' from category '%s'", name, category)
	return s.Repo.GetNameGroups()
}
