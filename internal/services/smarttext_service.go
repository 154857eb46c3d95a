// filepath: internal/services/smarttext_service.go
package services

import (
	"wardbulletin/internal/logging"
	"wardbulletin/internal/repository"
)

var _ SmartTextService = (*smartTextService)(nil)

// smartTextService handles the small set of editable boilerplate texts the
// program generator splices into printed bulletins.
type smartTextService struct {
	Repo *repository.Repository
}

// NewSmartTextService creates a new SmartTextService.
func NewSmartTextService(repo *repository.Repository) *smartTextService {
	return &smartTextService{Repo: repo}
}

func (s *smartTextService) Texts() (map[string]string, error) {
	return s.Repo.GetSmartText()
}

// Update overwrites the supplied keys and returns the complete fresh
// key-to-text snapshot. Keys that were never seeded are ignored rather than
// created, keeping the set of texts fixed.
func (s *smartTextService) Update(entries map[string]string, actorID int64) (map[string]string, error) {
	if len(entries) > 0 {
		if err := s.Repo.UpdateSmartText(entries, actorID); err != nil {
			return nil, err
		}
		logging.Log.Debugf("SmartTextService: updated %d text entries", len(entries))
	}
	return s.Repo.GetSmartText()
}
