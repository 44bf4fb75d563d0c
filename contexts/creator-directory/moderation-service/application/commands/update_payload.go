package commands

import (
	"context"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/moderation-service/application"
	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	"vitrine/contexts/creator-directory/moderation-service/ports"
)

type UpdatePayloadCommand struct {
	EntryID string
	Actor   entities.Actor
	Title   string
	Payload map[string]any
}

type UpdatePayloadUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Execute lets the owning submitter edit payload fields while the entry is
// still in submitted. Once a curator claims it for review, or the entry
// reaches a terminal status, submitter edits are locked.
func (uc UpdatePayloadUseCase) Execute(ctx context.Context, cmd UpdatePayloadCommand) (entities.Entry, error) {
	logger := application.ResolveLogger(uc.Logger)
	entry, err := uc.Repository.GetEntry(ctx, strings.TrimSpace(cmd.EntryID))
	if err != nil {
		return entities.Entry{}, err
	}
	if !entry.Submitter.Owns(cmd.Actor) {
		return entities.Entry{}, domainerrors.ErrForbidden
	}
	if entry.Status != entities.StatusSubmitted {
		return entities.Entry{}, domainerrors.ErrPayloadLocked
	}

	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return entities.Entry{}, domainerrors.ErrInvalidEntryInput
	}

	entry.Title = title
	entry.Payload = cmd.Payload
	entry.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.UpdateEntryPayload(ctx, entry, entities.StatusSubmitted); err != nil {
		return entities.Entry{}, err
	}

	logger.Info("entry payload updated",
		"event", "entry_payload_updated",
		"module", "creator-directory/moderation-service",
		"layer", "application",
		"entry_id", entry.EntryID,
	)
	return entry, nil
}
