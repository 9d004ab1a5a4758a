package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TokenStore keeps the refresh token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(refreshToken string) error
	Clear() error
}

// FileStore persists the refresh token in a JSON file readable only by
// the current user.
type FileStore struct {
	path string
}

type storedSession struct {
	RefreshToken string `json:"refresh_token"`
}

// NewFileStore creates a FileStore at path. An empty path selects
// DefaultSessionPath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// DefaultSessionPath is <user config dir>/viovio/session.json.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: locate config dir: %w", err)
	}
	return filepath.Join(dir, "viovio", "session.json"), nil
}

// Path returns the file location.
func (s *FileStore) Path() string { return s.path }

// Load returns the stored token, or "" when nothing is stored.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: read %s: %w", s.path, err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", fmt.Errorf("session: decode %s: %w", s.path, err)
	}
	return stored.RefreshToken, nil
}

// Save writes the token atomically.
func (s *FileStore) Save(refreshToken string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}

	data, err := json.Marshal(storedSession{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: replace: %w", err)
	}
	return nil
}

// Clear removes the file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}
