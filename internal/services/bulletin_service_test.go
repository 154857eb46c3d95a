// filepath: internal/services/bulletin_service_test.go
package services_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"wardbulletin/internal/config"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/services"
	"wardbulletin/internal/shared"
)

// setupBulletinServiceTest creates a temporary database for the bulletin
// content services.
func setupBulletinServiceTest(t *testing.T) (*repository.Repository, func()) {
	t.Helper()
	const dbPath = "test_bulletin_service.db"
	os.Remove(dbPath)

	testCfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", Path: dbPath},
	}

	repo, err := repository.NewRepository(testCfg)
	if err != nil {
		t.Fatalf("Failed to create repo: %v", err)
	}
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}
	return repo, cleanup
}

func TestNameServiceAdd_BlankName(t *testing.T) {
	repo, cleanup := setupBulletinServiceTest(t)
	defer cleanup()

	svc := services.NewNameService(repo)

	// Whitespace trims down to nothing and is rejected before the store
	// is touched.
	_, err := svc.Add("chorister", "   ", 1)
	assert.ErrorIs(t, err, shared.ErrNameRequired)

	groups, err := svc.Groups()
	assert.NoError(t, err)
	assert.Empty(t, groups["chorister"])
}

func TestHymnServiceAdd_MissingFields(t *testing.T) {
	repo, cleanup := setupBulletinServiceTest(t)
	defer cleanup()

	svc := services.NewHymnService(repo)

	_, err := svc.Add("", "I Am a Child of God", 1)
	assert.ErrorIs(t, err, shared.ErrHymnFieldsRequired)

	_, err = svc.Add("301", "  ", 1)
	assert.ErrorIs(t, err, shared.ErrHymnFieldsRequired)
}

func TestAgendaServiceSave_Validation(t *testing.T) {
	repo, cleanup := setupBulletinServiceTest(t)
	defer cleanup()

	svc := services.NewAgendaService(repo)

	err := svc.Save("", json.RawMessage(`{}`), 1)
	assert.ErrorIs(t, err, shared.ErrDateRequired)

	err = svc.Save("2026-09-06", nil, 1)
	assert.ErrorIs(t, err, shared.ErrAgendaDataInvalid)

	err = svc.Save("2026-09-06", json.RawMessage(`{not json`), 1)
	assert.ErrorIs(t, err, shared.ErrAgendaDataInvalid)
}
