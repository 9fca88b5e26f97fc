package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"aitranslate/internal/models"
)

// ErrCorruptSettings marks a stored settings value that could not be decoded.
// Load still returns usable defaults alongside it.
var ErrCorruptSettings = errors.New("corrupt settings")

// SettingsRepository is the durable gateway for the settings object.
type SettingsRepository interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

type kvSettingsRepository struct {
	kv  KVRepository
	key string
}

// NewSettingsRepository stores settings as JSON in the kv table under models.SettingsNamespace.
func NewSettingsRepository(kv KVRepository) SettingsRepository {
	return &kvSettingsRepository{kv: kv, key: models.SettingsNamespace}
}

func (r *kvSettingsRepository) Load(ctx context.Context) (*models.Settings, error) {
	raw, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			defaults := models.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return decodeSettings([]byte(raw))
}

func (r *kvSettingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	if err := r.kv.Put(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// decodeSettings accepts both the full shape and the older {apiKey, model} shape.
// Fields absent from data keep their defaults.
func decodeSettings(data []byte) (*models.Settings, error) {
	settings := models.DefaultSettings()
	if len(strings.TrimSpace(string(data))) == 0 {
		return &settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		defaults := models.DefaultSettings()
		return &defaults, fmt.Errorf("%w: %v", ErrCorruptSettings, err)
	}

	settings.Model = strings.TrimSpace(settings.Model)
	if settings.Model == "" {
		settings.Model = models.DefaultModel
	}
	settings.Reasoning = strings.ToLower(strings.TrimSpace(settings.Reasoning))
	if !models.IsReasoningLevel(settings.Reasoning) {
		settings.Reasoning = models.DefaultReasoning
	}
	return &settings, nil
}

func encodeSettings(settings *models.Settings) ([]byte, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
