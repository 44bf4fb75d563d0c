package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	"vitrine/contexts/creator-directory/moderation-service/ports"
)

func seedEntry(id string, status entities.Status, submitter entities.Submitter) entities.Entry {
	return entities.Entry{
		EntryID:   id,
		Kind:      entities.EntryKindCreator,
		Title:     "entry " + id,
		Submitter: submitter,
		Status:    status,
		CreatedAt: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateEntryWritesCreationRecord(t *testing.T) {
	store := NewStore(nil)
	entry := seedEntry("entry-1", entities.StatusSubmitted, entities.NewUserSubmitter("user-1"))

	creation := entities.HistoryRecord{
		HistoryID:      "hist-1",
		EntryID:        "entry-1",
		PreviousStatus: entities.StatusNone,
		NewStatus:      entities.StatusSubmitted,
		ActorID:        "user-1",
		ActorRole:      entities.ActorRoleSubmitter,
		CreatedAt:      entry.CreatedAt,
	}
	if err := store.CreateEntry(context.Background(), entry, creation); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	records, err := store.ListHistory(context.Background(), "entry-1")
	if err != nil {
		t.Fatalf("history lookup failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one creation record, got %d", len(records))
	}
	if records[0].PreviousStatus != entities.StatusNone || records[0].NewStatus != entities.StatusSubmitted {
		t.Fatalf("unexpected creation record: %+v", records[0])
	}
}

func TestTransitionEntryCompareAndSet(t *testing.T) {
	entry := seedEntry("entry-1", entities.StatusSubmitted, entities.NewUserSubmitter("user-1"))
	store := NewStore([]entities.Entry{entry})

	updated := entry
	updated.Status = entities.StatusInReview
	record := entities.HistoryRecord{
		HistoryID:      "hist-2",
		EntryID:        "entry-1",
		PreviousStatus: entities.StatusSubmitted,
		NewStatus:      entities.StatusInReview,
		ActorID:        "curator-1",
		ActorRole:      entities.ActorRoleCurator,
		CreatedAt:      time.Date(2026, time.March, 1, 11, 0, 0, 0, time.UTC),
	}
	if err := store.TransitionEntry(context.Background(), updated, entities.StatusSubmitted, record, nil); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	// Second writer raced on the same expected status and must lose without
	// appending history.
	err := store.TransitionEntry(context.Background(), updated, entities.StatusSubmitted, record, nil)
	if !errors.Is(err, domainerrors.ErrTransitionConflict) {
		t.Fatalf("expected transition conflict, got %v", err)
	}

	records, err := store.ListHistory(context.Background(), "entry-1")
	if err != nil {
		t.Fatalf("history lookup failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected seed + one transition record, got %d", len(records))
	}
}

func TestTransitionEntryAppendsOutbox(t *testing.T) {
	entry := seedEntry("entry-1", entities.StatusInReview, entities.NewUserSubmitter("user-1"))
	store := NewStore([]entities.Entry{entry})

	updated := entry
	updated.Status = entities.StatusAccepted
	event := ports.EventEnvelope{
		EventID:       "evt-1",
		EventType:     "entry.accepted",
		EntityType:    "entry",
		EntityID:      "entry-1",
		PartitionKey:  "entry-1",
		OccurredAtUTC: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	err := store.TransitionEntry(context.Background(), updated, entities.StatusInReview, entities.HistoryRecord{
		HistoryID: "hist-3",
		EntryID:   "entry-1",
		NewStatus: entities.StatusAccepted,
	}, []ports.EventEnvelope{event})
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("outbox list failed: %v", err)
	}
	if len(pending) != 1 || pending[0].OutboxID != "evt-1" {
		t.Fatalf("expected one pending outbox row evt-1, got %+v", pending)
	}

	if err := store.MarkOutboxPublished(context.Background(), "evt-1", time.Now()); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, err = store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("outbox relist failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected outbox drained after publish, got %d rows", len(pending))
	}
}

func TestDeleteEntryCascadesHistory(t *testing.T) {
	entry := seedEntry("entry-1", entities.StatusAccepted, entities.NewUserSubmitter("user-1"))
	store := NewStore([]entities.Entry{entry})

	if err := store.DeleteEntry(context.Background(), "entry-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.GetEntry(context.Background(), "entry-1"); !errors.Is(err, domainerrors.ErrEntryNotFound) {
		t.Fatalf("expected entry gone, got %v", err)
	}
	if _, err := store.ListHistory(context.Background(), "entry-1"); !errors.Is(err, domainerrors.ErrEntryNotFound) {
		t.Fatalf("expected history gone with entry, got %v", err)
	}
}

func TestClaimAuthoredEntriesStampsOnlySessionRows(t *testing.T) {
	anonymous := seedEntry("entry-1", entities.StatusSubmitted, entities.NewAnonymousSubmitter("sess-1"))
	otherSession := seedEntry("entry-2", entities.StatusSubmitted, entities.NewAnonymousSubmitter("sess-2"))
	alreadyOwned := seedEntry("entry-3", entities.StatusSubmitted, entities.NewUserSubmitter("user-2"))
	store := NewStore([]entities.Entry{anonymous, otherSession, alreadyOwned})

	claimed, err := store.ClaimAuthoredEntries(context.Background(), "sess-1", "user-1")
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed != 1 {
		t.Fatalf("expected one claimed entry, got %d", claimed)
	}

	item, err := store.GetEntry(context.Background(), "entry-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if item.Submitter.UserID != "user-1" {
		t.Fatalf("expected stamped user id, got %q", item.Submitter.UserID)
	}
	if item.Submitter.AnonymousSessionID != "sess-1" {
		t.Fatalf("expected session id retained after claim, got %q", item.Submitter.AnonymousSessionID)
	}

	untouched, err := store.GetEntry(context.Background(), "entry-2")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if untouched.Submitter.UserID != "" {
		t.Fatalf("entry of another session must stay anonymous, got %q", untouched.Submitter.UserID)
	}
}
