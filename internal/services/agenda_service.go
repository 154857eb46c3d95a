// filepath: internal/services/agenda_service.go
package services

import (
	"encoding/json"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/models"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/shared"
)

var _ AgendaService = (*agendaService)(nil)

// agendaService handles saved sacrament-meeting agendas keyed by date.
type agendaService struct {
	Repo *repository.Repository
}

// NewAgendaService creates a new AgendaService.
func NewAgendaService(repo *repository.Repository) *agendaService {
	return &agendaService{Repo: repo}
}

func (s *agendaService) List() ([]models.AgendaSummary, error) {
	return s.Repo.ListAgendas()
}

func (s *agendaService) Get(date string) (json.RawMessage, error) {
	if date == "" {
		return nil, shared.ErrAgendaNotFound
	}
	return s.Repo.GetAgendaData(date)
}

// Save upserts the agenda document for a date. The document is stored
// opaquely; the editor owns its shape, the server only guarantees it is
// valid JSON.
func (s *agendaService) Save(date string, data json.RawMessage, actorID int64) error {
	if date == "" {
		return shared.ErrDateRequired
	}
	if !json.Valid(data) {
		return shared.ErrAgendaDataInvalid
	}
	if err := s.Repo.SaveAgenda(date, data, actorID); err != nil {
		logging.Log.Errorf("AgendaService: failed to save agenda for %s: %v", date, err)
		return err
	}
	logging.Log.Debugf("AgendaService: saved agenda for %s", date)
	return nil
}
