package ports

import (
	"context"
	"time"

	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	"vitrine/internal/shared/events"
)

// EventEnvelope aliases the shared envelope so application code stays inside
// its own ports surface.
type EventEnvelope = events.Envelope

// Repository owns the curated ranking over accepted entries.
type Repository interface {
	// ListRanked returns accepted entries ordered position ascending with
	// unplaced entries last, ties broken by created_at descending.
	ListRanked(ctx context.Context) ([]entities.RankedEntry, error)
	// Reorder assigns dense positions 0..N-1 to exactly the listed entries
	// in the given order, atomically. Entries not listed keep their prior
	// position value. The whole snapshot is replaced in one transaction:
	// of two concurrent reorders the later commit wins entirely.
	Reorder(ctx context.Context, orderedIDs []string) error
	// InsertLast places a newly accepted entry after every placed entry.
	// Already-placed entries are left alone, making replayed acceptance
	// events harmless.
	InsertLast(ctx context.Context, entry entities.RankedEntry) error
}

type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, EventEnvelope) error) error
}

type Clock interface {
	Now() time.Time
}
