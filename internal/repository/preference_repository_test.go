package repository_test

import (
	"path/filepath"
	"testing"

	"emurai-be-svc/internal/config"
	"emurai-be-svc/internal/database"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) repository.PreferenceRepository {
	t.Helper()

	db, err := database.NewDatabase(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "prefs.db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	return repository.NewPreferenceRepository(db.DB)
}

func TestGetMissingKey(t *testing.T) {
	repo := testRepo(t)

	value, err := repo.Get(models.PreferenceKeyTheme)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestSetAndGet(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Set(models.PreferenceKeyTheme, models.ThemeLight))

	value, err := repo.Get(models.PreferenceKeyTheme)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, value)
}

func TestSetOverwrites(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Set(models.PreferenceKeyTheme, models.ThemeLight))
	require.NoError(t, repo.Set(models.PreferenceKeyTheme, models.ThemeDark))

	value, err := repo.Get(models.PreferenceKeyTheme)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, value)
}
