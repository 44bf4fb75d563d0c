package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/ordering-service/application"
	"vitrine/contexts/creator-directory/ordering-service/application/commands"
	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	"vitrine/contexts/creator-directory/ordering-service/ports"
)

const (
	entryAcceptedTopic = "entry.accepted"
	defaultConsumerCG  = "ordering-entry-cg"
)

// EntryAcceptedConsumer appends freshly accepted entries to the end of the
// curated ranking. InsertLast is replay-safe, so no dedup store is needed.
type EntryAcceptedConsumer struct {
	Subscriber    ports.EventSubscriber
	InsertDefault commands.InsertDefaultUseCase
	ConsumerGroup string
	Logger        *slog.Logger
}

func (c EntryAcceptedConsumer) Start(ctx context.Context) error {
	logger := application.ResolveLogger(c.Logger)
	group := strings.TrimSpace(c.ConsumerGroup)
	if group == "" {
		group = defaultConsumerCG
	}

	if err := c.Subscriber.Subscribe(ctx, entryAcceptedTopic, group, c.handleEntryAccepted); err != nil {
		logger.Error("entry accepted consumer subscribe failed",
			"event", "ordering_consumer_subscribe_failed",
			"module", "creator-directory/ordering-service",
			"layer", "worker",
			"topic", entryAcceptedTopic,
			"consumer_group", group,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("entry accepted consumer started",
		"event", "ordering_consumer_started",
		"module", "creator-directory/ordering-service",
		"layer", "worker",
		"consumer_group", group,
	)
	return nil
}

func (c EntryAcceptedConsumer) handleEntryAccepted(ctx context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)

	var payload struct {
		EntryID string `json:"entry_id"`
		Kind    string `json:"kind"`
	}
	if len(event.Payload) > 0 {
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			logger.Error("entry accepted payload decode failed",
				"event", "ordering_consumer_decode_failed",
				"module", "creator-directory/ordering-service",
				"layer", "worker",
				"event_id", event.EventID,
				"error", err.Error(),
			)
			return err
		}
	}

	entryID := payload.EntryID
	if entryID == "" {
		entryID = event.EntityID
	}

	return c.InsertDefault.Execute(ctx, entities.RankedEntry{
		EntryID:   entryID,
		Kind:      payload.Kind,
		CreatedAt: event.OccurredAtUTC,
	})
}
