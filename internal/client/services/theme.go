package services

import (
	"context"
	"fmt"

	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/storage"
	"github.com/avasiliev/fittrack/internal/logging"
)

// ThemeService keeps the colour-scheme preference. It is independent of the
// session: it loads before login and survives logout.
type ThemeService interface {
	// Load reads the persisted mode; anything missing or unreadable yields
	// the system default.
	Load(ctx context.Context) models.ThemeMode
	Mode() models.ThemeMode
	Set(ctx context.Context, mode models.ThemeMode) error
	// Toggle flips between light and dark; from system it lands on light.
	Toggle(ctx context.Context) (models.ThemeMode, error)
}

type themeService struct {
	repo storage.Repository
	log  logging.Logger

	mode models.ThemeMode
}

func NewThemeService(repo storage.Repository, log logging.Logger) ThemeService {
	return &themeService{repo: repo, log: log, mode: models.ThemeSystem}
}

func (t *themeService) Load(ctx context.Context) models.ThemeMode {
	t.mode = models.ThemeSystem

	data, err := t.repo.Get(ctx, storage.KeyTheme)
	if err != nil {
		t.log.Warn(ctx, "reading theme failed, using system default", "error", err)
		return t.mode
	}
	if len(data) == 0 {
		return t.mode
	}

	mode, err := models.ParseThemeMode(string(data))
	if err != nil {
		t.log.Warn(ctx, "persisted theme is invalid, using system default", "error", err)
		return t.mode
	}
	t.mode = mode
	return t.mode
}

func (t *themeService) Mode() models.ThemeMode { return t.mode }

func (t *themeService) Set(ctx context.Context, mode models.ThemeMode) error {
	if _, err := models.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	if err := t.repo.Set(ctx, storage.KeyTheme, []byte(mode)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	t.mode = mode
	return nil
}

func (t *themeService) Toggle(ctx context.Context) (models.ThemeMode, error) {
	next := models.ThemeLight
	if t.mode == models.ThemeLight {
		next = models.ThemeDark
	}
	if err := t.Set(ctx, next); err != nil {
		return t.mode, err
	}
	return next, nil
}
