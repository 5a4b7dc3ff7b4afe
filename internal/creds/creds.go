// Package creds stores the Raindrop access token. An environment override
// always wins over the persisted config file.
package creds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvToken is the environment variable checked before the config file.
const EnvToken = "RAINDROP_TOKEN"

const (
	configDirName  = "raindropctl"
	configFileName = "config.yaml"
	tokenKey       = "token"
)

// Store reads and writes the persisted token.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the user config directory.
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(base, configDirName)), nil
}

// NewStoreAt returns a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Token returns the access token, preferring the environment override.
// The second return is false when no token is configured anywhere.
func (s *Store) Token() (string, bool) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, true
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(s.dir, configFileName))
	if err := v.ReadInConfig(); err != nil {
		return "", false
	}
	token := v.GetString(tokenKey)
	return token, token != ""
}

// Save persists the token to the config file with owner-only permissions.
func (s *Store) Save(token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	path := filepath.Join(s.dir, configFileName)
	v.SetConfigFile(path)
	v.Set(tokenKey, token)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(path, 0600)
}

// Delete removes the persisted token. Deleting a token that was never saved
// is not an error.
func (s *Store) Delete() error {
	err := os.Remove(filepath.Join(s.dir, configFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove config: %w", err)
	}
	return nil
}
