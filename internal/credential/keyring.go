// Package credential stores mail.tm account passwords in the OS
// keyring, keyed by account address, so passwords don't have to travel
// on the command line for every call.
package credential

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "mailtm"

// openRing returns the configured keyring. The file backend is the
// last resort for systems without a native secret store.
func openRing() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.mailtm/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("mailtm-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// Password returns the stored password for an account address.
func Password(address string) (string, error) {
	ring, err := openRing()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(address)
	if err != nil {
		return "", fmt.Errorf("read credential for %q: %w", address, err)
	}
	return string(item.Data), nil
}

// Save stores the password for an account address.
func Save(address, password string) error {
	ring, err := openRing()
	if err != nil {
		return err
	}
	if err := ring.Set(keyring.Item{Key: address, Data: []byte(password)}); err != nil {
		return fmt.Errorf("store credential for %q: %w", address, err)
	}
	return nil
}

// Delete removes the stored password for an account address.
func Delete(address string) error {
	ring, err := openRing()
	if err != nil {
		return err
	}
	if err := ring.Remove(address); err != nil {
		return fmt.Errorf("delete credential for %q: %w", address, err)
	}
	return nil
}

// IsNotFound reports whether err means no credential was stored.
func IsNotFound(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound)
}
