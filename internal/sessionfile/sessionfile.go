// Package sessionfile persists the current session identity to disk so
// a restart resumes the same session. One fixed key, one JSON record,
// written synchronously on login and removed on logout. The password is
// never part of the record.
package sessionfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/medcenter/portal-api/internal/model"
)

// Key names the single persisted record inside the store file.
const Key = "currentUser"

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the identity under the fixed key, replacing any previous
// record.
func (s *Store) Save(user *model.User) error {
	data, err := json.Marshal(map[string]*model.User{Key: user})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the persisted identity. A missing or unparsable file is
// not an error: both mean "start unauthenticated".
func (s *Store) Load() (*model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var record map[string]*model.User
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}
	return record[Key], nil
}

// Clear removes the persisted record. Clearing an absent record is a
// no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Exists reports whether a persisted record is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
