package store

import (
	"fmt"
	"sync"

	"aerobook/internal/domain"
	"aerobook/internal/domain/models"
)

// SessionStore tracks the single active identity for the process. At most
// one user is logged in at a time; logging in again replaces it.
type SessionStore struct {
	mu   sync.RWMutex
	user *models.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Login selects a role and makes it the active user. Unknown roles are
// rejected rather than silently accepted.
func (s *SessionStore) Login(role string) (models.User, error) {
	r, ok := models.ParseRole(role)
	if !ok {
		return models.User{}, domain.ValidationError{Field: "role", Msg: fmt.Sprintf("unknown role %q", role)}
	}

	u := models.User{Name: r.DisplayName(), Role: r}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	return u, nil
}

// Logout clears the active user. Calling it with nobody logged in is a no-op.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// CurrentUser returns the active user, if any. It never fails.
func (s *SessionStore) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
