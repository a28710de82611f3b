package memory

import (
	"context"
	"sync"

	"github.com/shawski123/Item-Rental-Marketplace-Calhacks/internal/domain"
	apperrors "github.com/shawski123/Item-Rental-Marketplace-Calhacks/pkg/errors"
)

// SessionStore holds checkout sessions in memory. Sessions are transient by
// design; restarting the process discards them all.
type SessionStore struct {
	mu   sync.RWMutex
	byID map[string]domain.CheckoutSession
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		byID: make(map[string]domain.CheckoutSession),
	}
}

// Create stores a new session.
func (s *SessionStore) Create(_ context.Context, session *domain.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[session.ID]; exists {
		return apperrors.Conflict("session already exists: " + session.ID)
	}
	s.byID[session.ID] = *session
	return nil
}

// Get retrieves a session by its id.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("session", id)
	}
	return &sess, nil
}

// Save overwrites an existing session.
func (s *SessionStore) Save(_ context.Context, session *domain.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[session.ID]; !ok {
		return apperrors.NotFound("session", session.ID)
	}
	s.byID[session.ID] = *session
	return nil
}
