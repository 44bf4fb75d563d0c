package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	"vitrine/contexts/creator-directory/moderation-service/ports"

	"github.com/google/uuid"
)

type outboxRow struct {
	message   ports.OutboxMessage
	published bool
}

// Store is the in-memory repository used by tests and local runs. All
// multi-row operations happen under one lock so the same atomicity the
// postgres adapter gets from transactions holds here.
type Store struct {
	mu sync.RWMutex

	entries map[string]entities.Entry
	history map[string][]entities.HistoryRecord
	outbox  []outboxRow
}

func NewStore(seed []entities.Entry) *Store {
	entries := make(map[string]entities.Entry, len(seed))
	history := make(map[string][]entities.HistoryRecord, len(seed))
	for _, item := range seed {
		entries[item.EntryID] = item
		history[item.EntryID] = []entities.HistoryRecord{{
			HistoryID:      uuid.NewString(),
			EntryID:        item.EntryID,
			PreviousStatus: entities.StatusNone,
			NewStatus:      item.Status,
			ActorRole:      entities.ActorRoleSubmitter,
			CreatedAt:      item.CreatedAt,
		}}
	}
	return &Store{
		entries: entries,
		history: history,
	}
}

func (s *Store) CreateEntry(_ context.Context, entry entities.Entry, creation entities.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.EntryID] = entry
	s.history[entry.EntryID] = append(s.history[entry.EntryID], creation)
	return nil
}

func (s *Store) GetEntry(_ context.Context, entryID string) (entities.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.entries[strings.TrimSpace(entryID)]
	if !exists {
		return entities.Entry{}, domainerrors.ErrEntryNotFound
	}
	return item, nil
}

func (s *Store) ListEntries(_ context.Context, filter ports.EntryFilter) ([]entities.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Entry, 0, len(s.entries))
	for _, item := range s.entries {
		if filter.Kind != "" && item.Kind != filter.Kind {
			continue
		}
		if filter.Status != entities.StatusNone && item.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && item.Submitter.UserID != filter.UserID {
			continue
		}
		if filter.SessionID != "" && item.Submitter.AnonymousSessionID != filter.SessionID {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) TransitionEntry(
	_ context.Context,
	entry entities.Entry,
	expected entities.Status,
	record entities.HistoryRecord,
	outbox []ports.EventEnvelope,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.entries[entry.EntryID]
	if !exists {
		return domainerrors.ErrEntryNotFound
	}
	if stored.Status != expected {
		return domainerrors.ErrTransitionConflict
	}

	s.entries[entry.EntryID] = entry
	s.history[entry.EntryID] = append(s.history[entry.EntryID], record)
	for _, event := range outbox {
		s.outbox = append(s.outbox, outboxRow{
			message: ports.OutboxMessage{
				OutboxID:     event.EventID,
				EventType:    event.EventType,
				PartitionKey: event.PartitionKey,
				Payload:      marshalEnvelope(event),
				CreatedAt:    event.OccurredAtUTC,
			},
		})
	}
	return nil
}

func (s *Store) UpdateEntryPayload(_ context.Context, entry entities.Entry, expected entities.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.entries[entry.EntryID]
	if !exists {
		return domainerrors.ErrEntryNotFound
	}
	if stored.Status != expected {
		return domainerrors.ErrTransitionConflict
	}
	s.entries[entry.EntryID] = entry
	return nil
}

func (s *Store) DeleteEntry(_ context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(entryID)
	if _, exists := s.entries[id]; !exists {
		return domainerrors.ErrEntryNotFound
	}
	delete(s.entries, id)
	delete(s.history, id)
	return nil
}

func (s *Store) ListHistory(_ context.Context, entryID string) ([]entities.HistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id := strings.TrimSpace(entryID)
	if _, exists := s.entries[id]; !exists {
		return nil, domainerrors.ErrEntryNotFound
	}
	records := append([]entities.HistoryRecord(nil), s.history[id]...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0, limit)
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		items = append(items, row.message)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].published = true
			return nil
		}
	}
	return domainerrors.ErrEntryNotFound
}

// ClaimAuthoredEntries stamps the user id onto every still-anonymous entry
// authored under the session. The anonymous session id is retained on the
// entry for traceability.
func (s *Store) ClaimAuthoredEntries(_ context.Context, sessionID string, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claimed := 0
	for id, item := range s.entries {
		if item.Submitter.AnonymousSessionID == sessionID && item.Submitter.UserID == "" {
			item.Submitter.UserID = userID
			s.entries[id] = item
			claimed++
		}
	}
	return claimed, nil
}

func marshalEnvelope(event ports.EventEnvelope) []byte {
	payload, _ := json.Marshal(event)
	return payload
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
