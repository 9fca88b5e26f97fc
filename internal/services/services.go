package services

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"
	gormlogger "gorm.io/gorm/logger"

	"aitranslate/internal/config"
	"aitranslate/internal/database"
	"aitranslate/internal/events"
	"aitranslate/internal/repositories"
	"aitranslate/internal/secrets"
)

// Services aggregates the backend services bound to the frontend.
type Services struct {
	Settings *SettingsStore
	Models   ModelCatalogService
}

// NewServices constructs the service container around an already opened settings repository.
func NewServices(repo repositories.SettingsRepository, log logger.Logger, emitter *events.Emitter) *Services {
	return &Services{
		Settings: NewSettingsStore(repo, log, emitter),
		Models:   NewModelCatalogService(),
	}
}

// OpenSettingsRepository opens the storage backend selected by cfg. The returned
// close function releases it and is never nil.
func OpenSettingsRepository(cfg *config.Config) (repositories.SettingsRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage {
	case config.StorageKeyring:
		ring, err := secrets.Open(cfg.KeyringDir)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewKeyringSettingsRepository(ring), noop, nil

	case config.StorageSQLite, "":
		level := gormlogger.Warn
		if database.IsDevelopment() || cfg.LogLevel <= logger.DEBUG {
			level = gormlogger.Info
		}
		db, err := database.Init(database.Config{
			Path:     cfg.DBPath,
			LogLevel: level,
		})
		if err != nil {
			return nil, noop, err
		}
		closeDB := noop
		if sqlDB, err := db.DB(); err == nil {
			closeDB = sqlDB.Close
		}
		return repositories.NewSettingsRepository(repositories.NewKVRepository(db)), closeDB, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}
