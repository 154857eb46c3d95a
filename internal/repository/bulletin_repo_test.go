// filepath: internal/repository/bulletin_repo_test.go
package repository_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"wardbulletin/internal/config"
	"wardbulletin/internal/models"
	"wardbulletin/internal/repository"
	"wardbulletin/internal/shared"
)

// setupRepoTest creates a migrated temporary database and a user to own rows.
func setupRepoTest(t *testing.T) (*repository.Repository, *models.User, func()) {
	t.Helper()
	const dbPath = "test_bulletin_repo.db"
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

	user, err := repo.CreateUser(&repository.UserCreateArgs{
		Username: "owner",
		Email:    "owner@example.org",
		Password: "password123",
		Role:     models.RoleAdmin,
		Approved: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}
	return repo, user, cleanup
}

func TestNameGroups(t *testing.T) {
	repo, user, cleanup := setupRepoTest(t)
	defer cleanup()

	// An empty database still reports every category.
	groups, err := repo.GetNameGroups()
	assert.NoError(t, err)
	for _, cat := range models.NameCategories {
		assert.Contains(t, groups, cat)
		assert.Empty(t, groups[cat])
	}

	assert.NoError(t, repo.AddName("presiding", "Bishop Larsen", user.ID))
	assert.NoError(t, repo.AddName("presiding", "President Allred", user.ID))
	assert.NoError(t, repo.AddName("organist", "Sister Checketts", user.ID))

	groups, err = repo.GetNameGroups()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Bishop Larsen", "President Allred"}, groups["presiding"])
	assert.Equal(t, []string{"Sister Checketts"}, groups["organist"])
	assert.Empty(t, groups["chorister"])

	// Same name in a different category is fine; in the same category it is not.
	assert.NoError(t, repo.AddName("conducting", "Bishop Larsen", user.ID))
	err = repo.AddName("presiding", "Bishop Larsen", user.ID)
	assert.ErrorIs(t, err, shared.ErrNameExists)

	// Removal is idempotent.
	assert.NoError(t, repo.RemoveName("presiding", "Bishop Larsen"))
	assert.NoError(t, repo.RemoveName("presiding", "Bishop Larsen"))

	groups, _ = repo.GetNameGroups()
	assert.Equal(t, []string{"President Allred"}, groups["presiding"])
	assert.Equal(t, []string{"Bishop Larsen"}, groups["conducting"])
}

func TestHymns(t *testing.T) {
	repo, user, cleanup := setupRepoTest(t)
	defer cleanup()

	hymns, err := repo.GetHymns()
	assert.NoError(t, err)
	assert.Empty(t, hymns)

	assert.NoError(t, repo.AddHymn("1001", "Come Thou Fount", user.ID))
	assert.NoError(t, repo.AddHymn("1002", "His Eye Is on the Sparrow", user.ID))

	err = repo.AddHymn("1001", "Different Title", user.ID)
	assert.ErrorIs(t, err, shared.ErrHymnExists)

	hymns, err = repo.GetHymns()
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"1001": "Come Thou Fount",
		"1002": "His Eye Is on the Sparrow",
	}, hymns)

	assert.NoError(t, repo.RemoveHymn("1001"))
	assert.NoError(t, repo.RemoveHymn("9999")) // unknown number is not an error

	hymns, _ = repo.GetHymns()
	assert.Len(t, hymns, 1)
}

func TestSmartText(t *testing.T) {
	repo, user, cleanup := setupRepoTest(t)
	defer cleanup()

	// The migration seeds the default texts.
	texts, err := repo.GetSmartText()
	assert.NoError(t, err)
	assert.Contains(t, texts, "openingText")
	assert.Contains(t, texts, "reverenceText")
	assert.Contains(t, texts, "appreciationText")
	assert.Equal(t, "", texts["openingText"])
	assert.NotEmpty(t, texts["reverenceText"])

	err = repo.UpdateSmartText(map[string]string{
		"openingText": "Welcome to sacrament meeting.",
		"unknownKey":  "should be ignored",
	}, user.ID)
	assert.NoError(t, err)

	texts, err = repo.GetSmartText()
	assert.NoError(t, err)
	assert.Equal(t, "Welcome to sacrament meeting.", texts["openingText"])
	assert.NotContains(t, texts, "unknownKey", "Unseeded keys must not be created")
}

func TestAgendas(t *testing.T) {
	repo, user, cleanup := setupRepoTest(t)
	defer cleanup()

	_, err := repo.GetAgendaData("2026-09-06")
	assert.ErrorIs(t, err, shared.ErrAgendaNotFound)

	doc := json.RawMessage(`{"openingHymn":"1001","speakers":["Brother Hales"]}`)
	assert.NoError(t, repo.SaveAgenda("2026-09-06", doc, user.ID))

	data, err := repo.GetAgendaData("2026-09-06")
	assert.NoError(t, err)
	assert.JSONEq(t, string(doc), string(data))

	// Saving the same date again replaces the document.
	doc2 := json.RawMessage(`{"openingHymn":"1002"}`)
	assert.NoError(t, repo.SaveAgenda("2026-09-06", doc2, user.ID))

	data, err = repo.GetAgendaData("2026-09-06")
	assert.NoError(t, err)
	assert.JSONEq(t, string(doc2), string(data))

	assert.NoError(t, repo.SaveAgenda("2026-08-30", json.RawMessage(`{}`), user.ID))

	summaries, err := repo.ListAgendas()
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "2026-09-06", summaries[0].Date, "Agendas should list newest first")
	assert.Equal(t, "2026-08-30", summaries[1].Date)
}

func TestUserCacheInvalidation(t *testing.T) {
	repo, user, cleanup := setupRepoTest(t)
	defer cleanup()

	// Warm the cache.
	cached, err := repo.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.True(t, cached.Approved)

	_, err = repo.SetUserApproved(user.ID, false)
	assert.NoError(t, err)

	// The next read must see the mutation, not the cached row.
	fresh, err := repo.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.False(t, fresh.Approved)
}
