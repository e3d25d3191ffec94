// Package token persists the access/refresh token pair — the only state this
// application owns. The store is created at startup, loaded from disk, and
// cleared on logout; nothing else reads or writes the file.
package token

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Pair holds the bearer tokens issued by the backend.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Store is a file-backed token store safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	pair Pair
}

// NewStore loads any previously saved tokens from path. A missing file is not
// an error: the store simply starts logged out.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.pair); err != nil {
		// A corrupt token file is treated as logged out rather than fatal.
		s.pair = Pair{}
	}
	return s, nil
}

// Tokens returns the current pair.
func (s *Store) Tokens() Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair
}

// AccessToken returns the current access token, empty when logged out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.AccessToken
}

// RefreshToken returns the current refresh token, empty when logged out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair.RefreshToken
}

// LoggedIn reports whether an access token is present.
func (s *Store) LoggedIn() bool {
	return s.AccessToken() != ""
}

// Set replaces both tokens and persists them.
func (s *Store) Set(pair Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return s.persist()
}

// Clear wipes both tokens and removes the file. Used on logout and on
// unrecoverable refresh failure.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = Pair{}
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.pair)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}
