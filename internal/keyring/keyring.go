// Package keyring keeps the password-bearing postgres connection string out
// of the config file.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/calgrid/internal/constants"
)

var (
	// ErrNotFound is returned when no connection string is stored
	ErrNotFound = errors.New("connection string not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Get returns the stored connection string.
func Get() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// Set stores the connection string.
func Set(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

// Delete removes the stored connection string.
func Delete() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// Resolve picks the postgres connection string: CALGRID_DB_CONNECTION wins,
// then the keyring, then fallback (the password-free URL from the config).
func Resolve(fallback string) (string, error) {
	if env := strings.TrimSpace(os.Getenv(constants.EnvConnectionString)); env != "" {
		return env, nil
	}
	connStr, err := Get()
	if err == nil {
		return connStr, nil
	}
	if fallback != "" && (errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyringUnavailable)) {
		return fallback, nil
	}
	return "", err
}

// Mask hides the password of a URL or DSN connection string for display.
func Mask(connStr string) string {
	if at := strings.Index(connStr, "@"); at > 0 && strings.Contains(connStr, "://") {
		scheme := strings.Index(connStr, "://") + 3
		if colon := strings.Index(connStr[scheme:at], ":"); colon >= 0 {
			return connStr[:scheme+colon+1] + "****" + connStr[at:]
		}
		return connStr
	}
	fields := strings.Fields(connStr)
	for i, f := range fields {
		if k, _, ok := strings.Cut(f, "="); ok && strings.EqualFold(k, "password") {
			fields[i] = k + "=****"
		}
	}
	return strings.Join(fields, " ")
}
