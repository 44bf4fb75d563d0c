package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/ordering-service/domain/errors"
)

// Store keeps the ranking in memory. Reorder and InsertLast run under one
// lock, mirroring the postgres adapter's whole-list transaction.
type Store struct {
	mu sync.RWMutex

	ranked map[string]entities.RankedEntry
}

func NewStore(seed []entities.RankedEntry) *Store {
	ranked := make(map[string]entities.RankedEntry, len(seed))
	for _, item := range seed {
		ranked[item.EntryID] = item
	}
	return &Store{ranked: ranked}
}

func (s *Store) ListRanked(_ context.Context) ([]entities.RankedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.RankedEntry, 0, len(s.ranked))
	for _, item := range s.ranked {
		items = append(items, item)
	}
	sortRanked(items)
	return items, nil
}

func (s *Store) Reorder(_ context.Context, orderedIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range orderedIDs {
		if _, exists := s.ranked[id]; !exists {
			return domainerrors.ErrRankedEntryNotFound
		}
	}
	for index, id := range orderedIDs {
		item := s.ranked[id]
		position := index
		item.Position = &position
		s.ranked[id] = item
	}
	return nil
}

func (s *Store) InsertLast(_ context.Context, entry entities.RankedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.ranked[entry.EntryID]; exists && existing.IsPlaced() {
		return nil
	}

	next := 0
	for _, item := range s.ranked {
		if item.IsPlaced() && *item.Position >= next {
			next = *item.Position + 1
		}
	}
	entry.Position = &next
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.ranked[entry.EntryID] = entry
	return nil
}

func sortRanked(items []entities.RankedEntry) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i], items[j]
		switch {
		case left.IsPlaced() && right.IsPlaced():
			if *left.Position != *right.Position {
				return *left.Position < *right.Position
			}
			return left.CreatedAt.After(right.CreatedAt)
		case left.IsPlaced():
			return true
		case right.IsPlaced():
			return false
		default:
			return left.CreatedAt.After(right.CreatedAt)
		}
	})
}
