package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"booking-api/internal/client"
)

const tokenFileName = "token"

// tokenStore persists the admin token, the only state the CLI keeps.
type tokenStore struct {
	dir string
}

func defaultTokenStore() (*tokenStore, error) {
	if dir := os.Getenv("BOOKINGCTL_CONFIG_DIR"); dir != "" {
		return &tokenStore{dir: dir}, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &tokenStore{dir: filepath.Join(base, "bookingctl")}, nil
}

func (s *tokenStore) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

func (s *tokenStore) Load() (client.Session, error) {
	raw, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return client.Session{}, nil
	}
	if err != nil {
		return client.Session{}, err
	}
	return client.Session{Token: strings.TrimSpace(string(raw))}, nil
}

func (s *tokenStore) Save(session client.Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(session.Token), 0o600)
}

func (s *tokenStore) Clear() error {
	err := os.Remove(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
