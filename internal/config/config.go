package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"aitranslate/internal/database"
	"aitranslate/internal/utils"
)

const (
	StorageSQLite  = "sqlite"
	StorageKeyring = "keyring"
)

const (
	envStorage    = "AITRANSLATE_STORAGE"
	envDBPath     = "AITRANSLATE_DB_PATH"
	envKeyringDir = "AITRANSLATE_KEYRING_DIR"
	envLogLevel   = "AITRANSLATE_LOG_LEVEL"
	envLogFile    = "AITRANSLATE_LOG_FILE"
)

// Config is the process-level configuration resolved once at startup.
type Config struct {
	Storage    string
	DBPath     string
	KeyringDir string
	LogLevel   logger.LogLevel
	LogFile    string
}

// Load reads an optional .env file and then the AITRANSLATE_* environment.
func Load() (*Config, error) {
	if err := utils.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv resolves the configuration from getenv, applying defaults for unset values.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Storage:    strings.ToLower(strings.TrimSpace(getenv(envStorage))),
		DBPath:     strings.TrimSpace(getenv(envDBPath)),
		KeyringDir: strings.TrimSpace(getenv(envKeyringDir)),
		LogFile:    strings.TrimSpace(getenv(envLogFile)),
	}

	switch cfg.Storage {
	case "":
		cfg.Storage = StorageSQLite
	case StorageSQLite, StorageKeyring:
	default:
		return nil, fmt.Errorf("%s must be '%s' or '%s', got %q", envStorage, StorageSQLite, StorageKeyring, cfg.Storage)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = database.GetDefaultDBPath()
	}

	if cfg.KeyringDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.KeyringDir = filepath.Join(dir, "aitranslate", "keyring")
	}

	level, err := parseLogLevel(getenv(envLogLevel))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// Logger builds the Wails logger the services and the runtime share. Messages
// below c.LogLevel are dropped here too, since services call it directly
// rather than through the runtime.
func (c *Config) Logger() logger.Logger {
	var next logger.Logger
	if c.LogFile != "" {
		next = logger.NewFileLogger(c.LogFile)
	} else {
		next = logger.NewDefaultLogger()
	}
	return NewLevelLogger(next, c.LogLevel)
}

func parseLogLevel(raw string) (logger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return logger.TRACE, nil
	case "debug":
		return logger.DEBUG, nil
	case "", "info":
		return logger.INFO, nil
	case "warn", "warning":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	}
	return 0, fmt.Errorf("%s: unknown log level %q", envLogLevel, raw)
}
