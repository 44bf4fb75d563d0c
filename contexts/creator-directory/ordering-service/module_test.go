package orderingservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	moderationservice "vitrine/contexts/creator-directory/moderation-service"
	moderationhttpadapter "vitrine/contexts/creator-directory/moderation-service/adapters/http"
	moderationworkers "vitrine/contexts/creator-directory/moderation-service/application/workers"
	moderationhttp "vitrine/contexts/creator-directory/moderation-service/transport/http"
	orderingservice "vitrine/contexts/creator-directory/ordering-service"
	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	orderingerrors "vitrine/contexts/creator-directory/ordering-service/domain/errors"
	orderinghttp "vitrine/contexts/creator-directory/ordering-service/transport/http"
	"vitrine/internal/shared/events"
)

// inlineBus delivers published events to subscribers synchronously so the
// accept-to-ranking flow is deterministic under test.
type inlineBus struct {
	handlers map[string][]func(context.Context, events.Envelope) error
}

func newInlineBus() *inlineBus {
	return &inlineBus{handlers: make(map[string][]func(context.Context, events.Envelope) error)}
}

func (b *inlineBus) Publish(ctx context.Context, topic string, event events.Envelope) error {
	for _, handler := range b.handlers[topic] {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *inlineBus) Subscribe(
	_ context.Context,
	topic string,
	_ string,
	handler func(context.Context, events.Envelope) error,
) error {
	b.handlers[topic] = append(b.handlers[topic], handler)
	return nil
}

func position(value int) *int {
	return &value
}

func rankedSeed() []entities.RankedEntry {
	base := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	return []entities.RankedEntry{
		{EntryID: "entry-a", Kind: "creator", Position: position(2), CreatedAt: base},
		{EntryID: "entry-b", Kind: "creator", Position: position(0), CreatedAt: base.Add(time.Minute)},
		{EntryID: "entry-c", Kind: "creator", Position: position(1), CreatedAt: base.Add(2 * time.Minute)},
	}
}

func TestRankingListsByPosition(t *testing.T) {
	module := orderingservice.NewInMemoryModule(rankedSeed(), nil)

	resp, err := module.Handler.ListRankingHandler(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		got = append(got, item.EntryID)
	}
	want := []string{"entry-b", "entry-c", "entry-a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestReorderAssignsDensePositions(t *testing.T) {
	module := orderingservice.NewInMemoryModule(rankedSeed(), nil)

	err := module.Handler.ReorderHandler(context.Background(), "curator-1", true, orderinghttp.ReorderRequest{
		EntryIDs: []string{"entry-c", "entry-a", "entry-b"},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	resp, err := module.Handler.ListRankingHandler(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"entry-c", "entry-a", "entry-b"}
	for i, item := range resp.Items {
		if item.EntryID != want[i] {
			t.Fatalf("expected order %v, got item %d = %s", want, i, item.EntryID)
		}
		if item.Position == nil || *item.Position != i {
			t.Fatalf("expected dense position %d for %s, got %v", i, item.EntryID, item.Position)
		}
	}
}

func TestReorderRequiresCurator(t *testing.T) {
	module := orderingservice.NewInMemoryModule(rankedSeed(), nil)

	err := module.Handler.ReorderHandler(context.Background(), "user-1", false, orderinghttp.ReorderRequest{
		EntryIDs: []string{"entry-a", "entry-b", "entry-c"},
	})
	if !errors.Is(err, orderingerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-curator, got %v", err)
	}
}

func TestReorderRejectsInvalidInput(t *testing.T) {
	module := orderingservice.NewInMemoryModule(rankedSeed(), nil)

	cases := map[string][]string{
		"empty":      {},
		"blank id":   {"entry-a", " "},
		"duplicates": {"entry-a", "entry-a"},
	}
	for name, ids := range cases {
		err := module.Handler.ReorderHandler(context.Background(), "curator-1", true, orderinghttp.ReorderRequest{
			EntryIDs: ids,
		})
		if !errors.Is(err, orderingerrors.ErrInvalidOrdering) {
			t.Fatalf("%s: expected invalid ordering, got %v", name, err)
		}
	}
}

func TestReorderUnknownEntryFails(t *testing.T) {
	module := orderingservice.NewInMemoryModule(rankedSeed(), nil)

	err := module.Handler.ReorderHandler(context.Background(), "curator-1", true, orderinghttp.ReorderRequest{
		EntryIDs: []string{"entry-a", "entry-ghost"},
	})
	if !errors.Is(err, orderingerrors.ErrRankedEntryNotFound) {
		t.Fatalf("expected ranked entry not found, got %v", err)
	}
}

func TestInsertDefaultAppendsAndReplaysSafely(t *testing.T) {
	module := orderingservice.NewInMemoryModule(rankedSeed(), nil)

	fresh := entities.RankedEntry{
		EntryID:   "entry-d",
		Kind:      "proof",
		CreatedAt: time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC),
	}
	if err := module.InsertDefault.Execute(context.Background(), fresh); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := module.InsertDefault.Execute(context.Background(), fresh); err != nil {
		t.Fatalf("replay insert failed: %v", err)
	}

	resp, err := module.Handler.ListRankingHandler(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Items) != 4 {
		t.Fatalf("expected four ranked entries after replayed insert, got %d", len(resp.Items))
	}
	last := resp.Items[len(resp.Items)-1]
	if last.EntryID != "entry-d" || last.Position == nil || *last.Position != 3 {
		t.Fatalf("expected entry-d appended at position 3, got %+v", last)
	}
}

func TestAcceptedEntryFlowsIntoRanking(t *testing.T) {
	bus := newInlineBus()
	moderation := moderationservice.NewInMemoryModule(nil, nil)
	ordering := orderingservice.NewInMemoryModule(nil, nil)

	consumer := ordering.NewConsumer(bus, "", nil)
	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("consumer start failed: %v", err)
	}

	created, err := moderation.Handler.CreateEntryHandler(context.Background(), "creator", "user-1", "", moderationhttp.CreateEntryRequest{
		Title:   "speedrun archive",
		Payload: map[string]any{"platform": "youtube"},
	})
	if err != nil {
		t.Fatalf("create entry failed: %v", err)
	}

	curator := moderationhttpadapter.Actor("curator", "curator-1", "")
	if _, err := moderation.Handler.TransitionEntryHandler(context.Background(), curator, created.Entry.EntryID, moderationhttp.TransitionEntryRequest{
		TargetStatus: "accepted",
	}); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	relay := moderationworkers.OutboxRelay{
		Outbox:    moderation.Store,
		Publisher: bus,
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay failed: %v", err)
	}

	resp, err := ordering.Handler.ListRankingHandler(context.Background())
	if err != nil {
		t.Fatalf("ranking list failed: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected accepted entry in ranking, got %d items", len(resp.Items))
	}
	item := resp.Items[0]
	if item.EntryID != created.Entry.EntryID || item.Kind != "creator" {
		t.Fatalf("unexpected ranked entry: %+v", item)
	}
	if item.Position == nil || *item.Position != 0 {
		t.Fatalf("expected first accepted entry at position 0, got %v", item.Position)
	}

	// Relay replays must not duplicate the ranked row.
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay replay failed: %v", err)
	}
	resp, err = ordering.Handler.ListRankingHandler(context.Background())
	if err != nil {
		t.Fatalf("ranking relist failed: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected replay-safe ranking, got %d items", len(resp.Items))
	}
}
