package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"aitranslate/internal/models"
)

type keyringSettingsRepository struct {
	ring keyring.Keyring
	key  string
}

// NewKeyringSettingsRepository keeps the whole settings object, API key included,
// as a single item in the OS keyring.
func NewKeyringSettingsRepository(ring keyring.Keyring) SettingsRepository {
	return &keyringSettingsRepository{ring: ring, key: models.SettingsNamespace}
}

func (r *keyringSettingsRepository) Load(ctx context.Context) (*models.Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item, err := r.ring.Get(r.key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			defaults := models.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("read settings from keyring: %w", err)
	}
	return decodeSettings(item.Data)
}

func (r *keyringSettingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	err = r.ring.Set(keyring.Item{
		Key:         r.key,
		Data:        data,
		Label:       "AI Translate settings",
		Description: "Preferences and API key used by AI Translate",
	})
	if err != nil {
		return fmt.Errorf("write settings to keyring: %w", err)
	}
	return nil
}
