package services

import (
	"context"
	"testing"

	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTheme(t *testing.T) (ThemeService, storage.Repository) {
	t.Helper()
	repo := storage.NewSQLiteRepository(setupDB(t))
	return NewThemeService(repo, testLogger()), repo
}

func TestTheme_DefaultIsSystem(t *testing.T) {
	svc, _ := newTheme(t)
	assert.Equal(t, models.ThemeSystem, svc.Load(context.Background()))
	assert.Equal(t, models.ThemeSystem, svc.Mode())
}

func TestTheme_SetPersists(t *testing.T) {
	svc, repo := newTheme(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, models.ThemeDark))

	data, err := repo.Get(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), data)

	reloaded := NewThemeService(repo, testLogger())
	assert.Equal(t, models.ThemeDark, reloaded.Load(ctx))
}

func TestTheme_SetRejectsUnknownMode(t *testing.T) {
	svc, _ := newTheme(t)
	assert.Error(t, svc.Set(context.Background(), models.ThemeMode("sepia")))
	assert.Equal(t, models.ThemeSystem, svc.Mode())
}

func TestTheme_InvalidPersistedValueFallsBackToSystem(t *testing.T) {
	svc, repo := newTheme(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, storage.KeyTheme, []byte("neon")))
	assert.Equal(t, models.ThemeSystem, svc.Load(ctx))
}

func TestTheme_Toggle(t *testing.T) {
	svc, repo := newTheme(t)
	ctx := context.Background()
	svc.Load(ctx)

	// system toggles to light, then light and dark alternate
	mode, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, mode)

	mode, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, mode)

	mode, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, mode)

	data, err := repo.Get(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("light"), data)
}
