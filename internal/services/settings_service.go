package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"aitranslate/internal/events"
	"aitranslate/internal/models"
	"aitranslate/internal/repositories"
)

// SettingsStore owns the live settings value. Construct one per process and
// share the pointer; every mutation is saved before it becomes visible.
type SettingsStore struct {
	repo    repositories.SettingsRepository
	log     logger.Logger
	emitter *events.Emitter
	ctx     context.Context

	mu       sync.RWMutex
	settings models.Settings

	// emitMu is taken before mu is released so events leave in save order.
	emitMu sync.Mutex
}

// NewSettingsStore builds the store. Each store keeps its own copy of the
// settings, so build exactly one per repository and share the pointer; a
// second store on the same repository only sees the first one's writes after
// its next Startup.
func NewSettingsStore(repo repositories.SettingsRepository, log logger.Logger, emitter *events.Emitter) *SettingsStore {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &SettingsStore{
		repo:     repo,
		log:      log,
		emitter:  emitter,
		ctx:      context.Background(),
		settings: models.DefaultSettings(),
	}
}

// Startup loads the persisted settings. Unreadable or corrupt storage falls
// back to defaults so the app still opens.
func (s *SettingsStore) Startup(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx

	loaded, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.settings = *loaded
		s.log.Info(fmt.Sprintf("settings loaded (model=%s, reasoning=%s)", loaded.Model, loaded.Reasoning))
	case errors.Is(err, repositories.ErrCorruptSettings):
		s.settings = models.DefaultSettings()
		s.log.Warning(fmt.Sprintf("stored settings are corrupt, using defaults: %v", err))
	default:
		s.settings = models.DefaultSettings()
		s.log.Warning(fmt.Sprintf("failed to load settings, using defaults: %v", err))
	}
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetAPIKey replaces the API key. Any value is accepted; empty means unset.
// Invalid UTF-8 is replaced with U+FFFD before saving, as the JSON encoding
// would, so memory and storage hold the same key.
func (s *SettingsStore) SetAPIKey(apiKey string) (models.Settings, error) {
	return s.mutate("api key updated", func(next *models.Settings) error {
		next.APIKey = sanitizeAPIKey(apiKey)
		return nil
	})
}

func (s *SettingsStore) SetModel(model string) (models.Settings, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return s.Settings(), errors.New("model is required")
	}
	return s.mutate("model updated", func(next *models.Settings) error {
		next.Model = model
		return nil
	})
}

func (s *SettingsStore) SetReasoning(level string) (models.Settings, error) {
	level, err := normalizeReasoning(level)
	if err != nil {
		return s.Settings(), err
	}
	return s.mutate("reasoning updated", func(next *models.Settings) error {
		next.Reasoning = level
		return nil
	})
}

func (s *SettingsStore) SetRhyme(enabled bool) (models.Settings, error) {
	return s.mutate("rhyme updated", func(next *models.Settings) error {
		next.Rhyme = enabled
		return nil
	})
}

// Update applies every non-nil field of patch in a single save.
func (s *SettingsStore) Update(patch models.SettingsPatch) (models.Settings, error) {
	return s.mutate("settings updated", func(next *models.Settings) error {
		if patch.Model != nil {
			model := strings.TrimSpace(*patch.Model)
			if model == "" {
				return errors.New("model is required")
			}
			next.Model = model
		}
		if patch.Reasoning != nil {
			level, err := normalizeReasoning(*patch.Reasoning)
			if err != nil {
				return err
			}
			next.Reasoning = level
		}
		if patch.APIKey != nil {
			next.APIKey = sanitizeAPIKey(*patch.APIKey)
		}
		if patch.Rhyme != nil {
			next.Rhyme = *patch.Rhyme
		}
		return nil
	})
}

// Reset restores and persists the defaults.
func (s *SettingsStore) Reset() (models.Settings, error) {
	return s.mutate("settings reset", func(next *models.Settings) error {
		*next = models.DefaultSettings()
		return nil
	})
}

// mutate holds the write lock across save and swap, so readers never observe
// a value that is not on disk. On failure the current settings are returned
// with the error.
func (s *SettingsStore) mutate(message string, apply func(next *models.Settings) error) (models.Settings, error) {
	s.mu.Lock()
	next := s.settings
	if err := apply(&next); err != nil {
		current := s.settings
		s.mu.Unlock()
		return current, err
	}
	if err := s.repo.Save(s.ctx, &next); err != nil {
		current := s.settings
		s.mu.Unlock()
		s.log.Error(fmt.Sprintf("failed to save settings: %v", err))
		return current, err
	}
	s.settings = next
	ctx := s.ctx
	s.emitMu.Lock()
	s.mu.Unlock()

	s.emitter.Emit(ctx, events.SettingsChanged, events.NewSettingsEvent(events.EventInfo, message, next))
	s.emitMu.Unlock()
	return next, nil
}

func sanitizeAPIKey(apiKey string) string {
	return strings.ToValidUTF8(apiKey, "\uFFFD")
}

func normalizeReasoning(level string) (string, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if !models.IsReasoningLevel(level) {
		return "", errors.New("reasoning must be 'low', 'medium', or 'high'")
	}
	return level, nil
}
