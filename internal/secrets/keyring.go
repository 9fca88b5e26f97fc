package secrets

import (
	"errors"
	"fmt"
	"os"

	"github.com/99designs/keyring"

	"aitranslate/internal/models"
)

// passwordEnv unlocks the encrypted-file fallback used when no OS keychain is reachable.
const passwordEnv = "AITRANSLATE_KEYRING_PASSWORD"

// Open returns the OS keyring scoped to the aitranslate service. dir is where the
// encrypted file backend keeps its items when it is the only backend available.
func Open(dir string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              models.SettingsNamespace,
		KeychainName:             models.SettingsNamespace,
		KeychainTrustApplication: true,
		KWalletAppID:             models.SettingsNamespace,
		KWalletFolder:            models.SettingsNamespace,
		LibSecretCollectionName:  models.SettingsNamespace,
		WinCredPrefix:            models.SettingsNamespace,
		FileDir:                  dir,
		FilePasswordFunc:         filePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// OpenFile returns a keyring backed only by encrypted files in dir.
func OpenFile(dir, password string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:      models.SettingsNamespace,
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          dir,
		FilePasswordFunc: keyring.FixedStringPrompt(password),
	})
	if err != nil {
		return nil, fmt.Errorf("open file keyring: %w", err)
	}
	return ring, nil
}

// errNoKeyringPassword is returned instead of prompting: the app has no terminal.
var errNoKeyringPassword = errors.New("no OS keychain available; set " + passwordEnv + " to use the encrypted file keyring")

func filePassword(string) (string, error) {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw, nil
	}
	return "", errNoKeyringPassword
}
