package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	credentialsDir  = "todo"
	credentialsFile = "credentials"
)

// credentialStore keeps the bearer token in a user-only file.
type credentialStore struct {
	path string
}

type storedCredentials struct {
	Token string `json:"token"`
}

func newDefaultCredentialStore() (*credentialStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve home directory")
	}

	return &credentialStore{path: filepath.Join(home, credentialsDir, credentialsFile)}, nil
}

// Save writes the token, creating the directory if needed.
func (s *credentialStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create credentials directory")
	}

	data, err := json.Marshal(storedCredentials{Token: token})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write credentials")
	}

	// WriteFile keeps the mode of an existing file.
	return errors.WithStack(os.Chmod(s.path, 0o600))
}

// Load returns the stored token, or "" when none is stored.
func (s *credentialStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read credentials")
	}

	var creds storedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", errors.Wrap(err, "credentials file is corrupt")
	}

	return creds.Token, nil
}

// Clear removes the stored token.
func (s *credentialStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "failed to remove credentials")
	}

	return nil
}
