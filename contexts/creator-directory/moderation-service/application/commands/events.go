package commands

import (
	"encoding/json"
	"time"

	"vitrine/contexts/creator-directory/moderation-service/ports"
)

const EntryAcceptedTopic = "entry.accepted"

func newEntryEnvelope(
	eventID string,
	eventType string,
	entryID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		SourceService: "moderation-service",
		OccurredAtUTC: occurredAt.UTC(),
		EntityType:    "entry",
		EntityID:      entryID,
		PartitionKey:  entryID,
		SchemaVersion: 1,
		Payload:       payload,
	}, nil
}
