package session

import "sync"

// MemStore keeps the session in memory only. Used by tests and by the
// local status server when no state directory is wanted.
type MemStore struct {
	mu       sync.Mutex
	token    string
	redirect string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *MemStore) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

func (s *MemStore) Redirect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirect
}

func (s *MemStore) SetRedirect(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirect = path
	return nil
}

func (s *MemStore) ClearRedirect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirect = ""
	return nil
}

// Compile-time interface check
var _ Store = (*MemStore)(nil)
