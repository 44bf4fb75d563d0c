package commands

import (
	"context"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/moderation-service/application"
	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	"vitrine/contexts/creator-directory/moderation-service/domain/services"
	"vitrine/contexts/creator-directory/moderation-service/ports"
)

type TransitionEntryCommand struct {
	EntryID string
	Target  entities.Status
	Actor   entities.Actor
	Comment string
}

type TransitionEntryUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Execute validates the requested transition against the machine and applies
// it with a compare-and-set on the status read here. A concurrent transition
// surfaces as ErrTransitionConflict; the caller retries with fresh state.
func (uc TransitionEntryUseCase) Execute(ctx context.Context, cmd TransitionEntryCommand) (entities.Entry, error) {
	logger := application.ResolveLogger(uc.Logger)
	if _, ok := entities.ParseStatus(string(cmd.Target)); !ok {
		return entities.Entry{}, domainerrors.ErrUnknownStatus
	}

	entry, err := uc.Repository.GetEntry(ctx, strings.TrimSpace(cmd.EntryID))
	if err != nil {
		return entities.Entry{}, err
	}

	current := entry.Status
	isOwner := entry.Submitter.Owns(cmd.Actor)
	if err := services.Decide(current, cmd.Target, cmd.Actor.Role, isOwner); err != nil {
		return entities.Entry{}, err
	}

	historyID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Entry{}, err
	}
	now := uc.Clock.Now().UTC()

	entry.Status = cmd.Target
	entry.UpdatedAt = now
	record := entities.HistoryRecord{
		HistoryID:      historyID,
		EntryID:        entry.EntryID,
		PreviousStatus: current,
		NewStatus:      cmd.Target,
		ActorID:        actorID(cmd.Actor),
		ActorRole:      cmd.Actor.Role,
		Comment:        strings.TrimSpace(cmd.Comment),
		CreatedAt:      now,
	}

	var outbox []ports.EventEnvelope
	if cmd.Target == entities.StatusAccepted {
		eventID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return entities.Entry{}, err
		}
		event, err := newEntryEnvelope(eventID, EntryAcceptedTopic, entry.EntryID, now, map[string]any{
			"entry_id": entry.EntryID,
			"kind":     string(entry.Kind),
		})
		if err != nil {
			return entities.Entry{}, err
		}
		outbox = append(outbox, event)
	}

	if err := uc.Repository.TransitionEntry(ctx, entry, current, record, outbox); err != nil {
		return entities.Entry{}, err
	}

	logger.Info("entry transitioned",
		"event", "entry_transitioned",
		"module", "creator-directory/moderation-service",
		"layer", "application",
		"entry_id", entry.EntryID,
		"previous_status", string(current),
		"new_status", string(cmd.Target),
		"actor_role", string(cmd.Actor.Role),
	)
	return entry, nil
}

func actorID(actor entities.Actor) string {
	if actor.UserID != "" {
		return actor.UserID
	}
	return actor.AnonymousSessionID
}
