// Package tokenstore centralizes auth-token storage behind one accessor so
// the persistent-then-session lookup policy is defined once for the data
// layer and any route-guarding logic.
package tokenstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// tokenKey is the storage key in both scopes.
const tokenKey = "authToken"

// Store holds the auth token in two scopes: a persistent file written when
// the user chooses "remember me", and a session scope that lives only as
// long as the process. Lookup prefers the persistent scope.
type Store struct {
	mu      sync.Mutex
	path    string
	session string
}

// New creates a store whose persistent scope lives at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Token resolves the current token: persistent scope first, then session
// scope, else empty. An empty result means the session is unauthenticated,
// which is not an error.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token := s.readPersistent(); token != "" {
		return token
	}
	return s.session
}

// Save stores the token. With remember set it survives restarts; otherwise
// it lives in the session scope only.
func (s *Store) Save(token string, remember bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !remember {
		s.session = token
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yml")
	v.Set(tokenKey, token)
	return v.WriteConfigAs(s.path)
}

// Clear removes the token from both scopes.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) readPersistent() string {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.GetString(tokenKey)
}
