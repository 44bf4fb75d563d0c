package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"vitrine/contexts/creator-directory/identity-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/identity-service/domain/errors"
	"vitrine/contexts/creator-directory/identity-service/ports"

	"github.com/google/uuid"
)

// Store keeps sessions in memory; entry stamping is delegated to the entry
// store injected at composition time.
type Store struct {
	mu sync.RWMutex

	sessions map[string]entities.AnonymousSession
	entries  ports.EntryClaimer
}

func NewStore(entries ports.EntryClaimer) *Store {
	return &Store{
		sessions: make(map[string]entities.AnonymousSession),
		entries:  entries,
	}
}

func (s *Store) CreateSession(_ context.Context, session entities.AnonymousSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (entities.AnonymousSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[strings.TrimSpace(sessionID)]
	if !exists {
		return entities.AnonymousSession{}, domainerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) ClaimSession(ctx context.Context, sessionID string, userID string, claimedAt time.Time) (int, error) {
	s.mu.Lock()
	session, exists := s.sessions[sessionID]
	if !exists {
		s.mu.Unlock()
		return 0, domainerrors.ErrSessionNotFound
	}
	if session.LinkedUserID == userID {
		s.mu.Unlock()
		return 0, nil
	}
	if session.IsClaimed() {
		s.mu.Unlock()
		return 0, domainerrors.ErrIdentityConflict
	}

	session.LinkedUserID = userID
	stamp := claimedAt.UTC()
	session.ClaimedAt = &stamp
	s.sessions[sessionID] = session
	s.mu.Unlock()

	if s.entries == nil {
		return 0, nil
	}
	return s.entries.ClaimAuthoredEntries(ctx, sessionID, userID)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
