package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aitranslate/internal/database"
	"aitranslate/internal/models"
	"aitranslate/internal/secrets"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "aitranslate.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func settingsBackends(t *testing.T) map[string]func() SettingsRepository {
	db := openTestDB(t)
	ringDir := t.TempDir()
	return map[string]func() SettingsRepository{
		"sqlite": func() SettingsRepository {
			return NewSettingsRepository(NewKVRepository(db))
		},
		"keyring": func() SettingsRepository {
			ring, err := secrets.OpenFile(ringDir, "test-password")
			require.NoError(t, err)
			return NewKeyringSettingsRepository(ring)
		},
	}
}

func TestSettingsRepository_LoadDefaultsWhenEmpty(t *testing.T) {
	for name, open := range settingsBackends(t) {
		t.Run(name, func(t *testing.T) {
			settings, err := open().Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, models.DefaultSettings(), *settings)
			assert.Equal(t, "", settings.APIKey)
			assert.Equal(t, "gpt-4o", settings.Model)
		})
	}
}

func TestSettingsRepository_RoundTripAcrossInstances(t *testing.T) {
	for name, open := range settingsBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := models.Settings{APIKey: "sk-123", Model: "o3-mini", Reasoning: "high", Rhyme: true}
			require.NoError(t, open().Save(ctx, &want))

			got, err := open().Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestSettingsRepository_SaveNil(t *testing.T) {
	for name, open := range settingsBackends(t) {
		t.Run(name, func(t *testing.T) {
			err := open().Save(context.Background(), nil)
			assert.EqualError(t, err, "settings are required")
		})
	}
}

func TestSettingsRepository_PersistedShape(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepository(openTestDB(t))
	repo := NewSettingsRepository(kv)

	require.NoError(t, repo.Save(ctx, &models.Settings{APIKey: "sk-123", Model: "gpt-4o", Reasoning: "medium"}))

	raw, err := kv.Get(ctx, "aitranslate")
	require.NoError(t, err)
	assert.JSONEq(t, `{"apiKey":"sk-123","model":"gpt-4o","reasoning":"medium","rhyme":false}`, raw)
}

func TestSettingsRepository_LoadShortShape(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepository(openTestDB(t))
	require.NoError(t, kv.Put(ctx, "aitranslate", `{"apiKey":"sk-abc","model":"gemini-1.5-flash"}`))

	settings, err := NewSettingsRepository(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{
		APIKey:    "sk-abc",
		Model:     "gemini-1.5-flash",
		Reasoning: "medium",
		Rhyme:     false,
	}, *settings)
}

func TestSettingsRepository_LoadNormalizesFields(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepository(openTestDB(t))
	require.NoError(t, kv.Put(ctx, "aitranslate", `{"model":"  ","reasoning":" HIGH ","rhyme":true}`))

	settings, err := NewSettingsRepository(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", settings.Model)
	assert.Equal(t, "high", settings.Reasoning)
	assert.True(t, settings.Rhyme)

	require.NoError(t, kv.Put(ctx, "aitranslate", `{"reasoning":"extreme"}`))
	settings, err = NewSettingsRepository(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "medium", settings.Reasoning)
}

func TestSettingsRepository_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepository(openTestDB(t))
	require.NoError(t, kv.Put(ctx, "aitranslate", `{"apiKey":`))

	settings, err := NewSettingsRepository(kv).Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptSettings)
	require.NotNil(t, settings)
	assert.Equal(t, models.DefaultSettings(), *settings)
}

func TestKVRepository_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepository(openTestDB(t))

	require.NoError(t, kv.Put(ctx, "k", "one"))
	require.NoError(t, kv.Put(ctx, "k", "two"))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	_, err = kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVRepository_EmptyKey(t *testing.T) {
	kv := NewKVRepository(openTestDB(t))
	ctx := context.Background()

	_, err := kv.Get(ctx, "")
	assert.EqualError(t, err, "key is required")
	assert.EqualError(t, kv.Put(ctx, "", "v"), "key is required")
}

func TestSettingsRepository_InvalidUTF8IsReplaced(t *testing.T) {
	for name, open := range settingsBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, open().Save(ctx, &models.Settings{APIKey: "sk-\xff\xfe-abc", Model: "gpt-4o", Reasoning: "medium"}))

			got, err := open().Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, "sk-\uFFFD\uFFFD-abc", got.APIKey)
		})
	}
}
