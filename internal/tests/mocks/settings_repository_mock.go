package mocks

import (
	"context"
	"sync"

	"aitranslate/internal/models"
)

// SettingsRepositoryMock keeps the saved value in memory, so two stores built
// on the same mock behave like two processes sharing one durable entry.
type SettingsRepositoryMock struct {
	LoadFunc func(ctx context.Context) (*models.Settings, error)
	SaveFunc func(ctx context.Context, settings *models.Settings) error

	mu    sync.Mutex
	saved *models.Settings
	Saves int
}

func (m *SettingsRepositoryMock) Load(ctx context.Context) (*models.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	cp := *m.saved
	return &cp, nil
}

func (m *SettingsRepositoryMock) Save(ctx context.Context, settings *models.Settings) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, settings); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *settings
	m.saved = &cp
	m.Saves++
	return nil
}

// Saved returns the last value written, or nil when nothing was saved.
func (m *SettingsRepositoryMock) Saved() *models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return nil
	}
	cp := *m.saved
	return &cp
}
