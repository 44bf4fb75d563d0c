package ports

import (
	"context"
	"time"

	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	"vitrine/internal/shared/events"
	"vitrine/internal/shared/outbox"
)

// EventEnvelope and OutboxMessage alias the shared contracts so application
// code stays inside its own ports surface.
type EventEnvelope = events.Envelope

type OutboxMessage = outbox.Message

type EntryFilter struct {
	Kind      entities.EntryKind
	Status    entities.Status
	UserID    string
	SessionID string
}

// Repository owns entry rows and their append-only history. Entry creation
// and every status transition persist their history record in the same
// transaction; history has no update or delete operation.
type Repository interface {
	// CreateEntry persists the entry and its creation history record
	// atomically. An entry without a creation record must be impossible.
	CreateEntry(ctx context.Context, entry entities.Entry, creation entities.HistoryRecord) error
	GetEntry(ctx context.Context, entryID string) (entities.Entry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]entities.Entry, error)
	// TransitionEntry applies the already-decided entry state with a
	// compare-and-set on the stored status. expected is the status the
	// decision was made against; a mismatch returns ErrTransitionConflict
	// and leaves entry, history and outbox untouched. Outbox events are
	// appended in the same transaction.
	TransitionEntry(ctx context.Context, entry entities.Entry, expected entities.Status, record entities.HistoryRecord, outbox []EventEnvelope) error
	// UpdateEntryPayload replaces payload fields guarded by the same
	// compare-and-set on status.
	UpdateEntryPayload(ctx context.Context, entry entities.Entry, expected entities.Status) error
	// DeleteEntry hard-deletes the entry and cascades its history rows.
	DeleteEntry(ctx context.Context, entryID string) error
	// ListHistory returns records ascending by creation time, oldest first.
	// Returns ErrEntryNotFound for unknown (including hard-deleted) entries.
	ListHistory(ctx context.Context, entryID string) ([]entities.HistoryRecord, error)
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
