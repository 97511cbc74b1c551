package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the single source of truth for the bearer token and the
// post-login redirect target. It is injected into every component that
// talks to the API so tests can substitute a double.
type Store interface {
	Token() (string, bool)
	SetToken(token string) error
	Clear() error
	Authenticated() bool
	Redirect() string
	SetRedirect(path string) error
	ClearRedirect() error
}

type fileState struct {
	Token    string `json:"token,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// FileStore persists the session as a JSON file under a state directory.
// Reads are served from an in-memory copy so a SetToken is visible to the
// next Token call without touching the disk again.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state fileState
}

// NewFileStore loads any existing session from dir. An unreadable or
// malformed file is treated as "no session", never as an error.
func NewFileStore(dir string) *FileStore {
	s := &FileStore{path: filepath.Join(dir, "session.json")}
	data, err := os.ReadFile(s.path)
	if err == nil {
		_ = json.Unmarshal(data, &s.state)
	}
	return s
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token, s.state.Token != ""
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.flush()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = ""
	return s.flush()
}

func (s *FileStore) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

func (s *FileStore) Redirect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Redirect
}

func (s *FileStore) SetRedirect(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Redirect = path
	return s.flush()
}

func (s *FileStore) ClearRedirect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Redirect = ""
	return s.flush()
}

func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Compile-time interface check
var _ Store = (*FileStore)(nil)
