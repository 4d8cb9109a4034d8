// Package session holds the client-side authentication state: who is
// logged in, their bearer token, and the persisted copy of both.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFileName = "credentials.json"

// Credentials is the serialized session: the bearer token and the raw
// user record, stored and cleared together.
type Credentials struct {
	Token string          `json:"auth_token"`
	User  json.RawMessage `json:"auth_user"`
}

// Store persists credentials across process restarts.
// The session manager is its only writer.
type Store interface {
	// Load returns the stored credentials, or (nil, nil) when none exist.
	// A present-but-unreadable store returns an error.
	Load() (*Credentials, error)
	Save(creds *Credentials) error
	// Clear removes the stored credentials. Clearing an empty store is a no-op.
	Clear() error
}

// FileStore keeps credentials in a JSON file with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given path.
// An empty path uses ~/.chatportal/credentials.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}
		path = filepath.Join(home, ".chatportal", credentialsFileName)
	}
	return &FileStore{path: path}, nil
}

// Path returns the credentials file location.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load implements Store.
func (fs *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return &creds, nil
}

// Save implements Store.
func (fs *FileStore) Save(creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear implements Store.
func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
