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

type CreateEntryCommand struct {
	Kind      entities.EntryKind
	Title     string
	Payload   map[string]any
	Submitter entities.Submitter
}

type CreateEntryUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc CreateEntryUseCase) Execute(ctx context.Context, cmd CreateEntryCommand) (entities.Entry, error) {
	logger := application.ResolveLogger(uc.Logger)
	entryID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Entry{}, err
	}
	historyID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Entry{}, err
	}

	now := uc.Clock.Now().UTC()
	entry := entities.Entry{
		EntryID:   entryID,
		Kind:      cmd.Kind,
		Title:     strings.TrimSpace(cmd.Title),
		Payload:   cmd.Payload,
		Submitter: cmd.Submitter,
		Status:    entities.StatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !entry.ValidateCreate() {
		return entities.Entry{}, domainerrors.ErrInvalidEntryInput
	}

	creation := entities.HistoryRecord{
		HistoryID:      historyID,
		EntryID:        entryID,
		PreviousStatus: entities.StatusNone,
		NewStatus:      entities.StatusSubmitted,
		ActorID:        submitterActorID(cmd.Submitter),
		ActorRole:      entities.ActorRoleSubmitter,
		CreatedAt:      now,
	}
	if err := uc.Repository.CreateEntry(ctx, entry, creation); err != nil {
		return entities.Entry{}, err
	}

	logger.Info("entry created",
		"event", "entry_created",
		"module", "creator-directory/moderation-service",
		"layer", "application",
		"entry_id", entry.EntryID,
		"kind", string(entry.Kind),
		"anonymous", entry.Submitter.ActiveUserID() == "",
	)
	return entry, nil
}

func submitterActorID(submitter entities.Submitter) string {
	if submitter.UserID != "" {
		return submitter.UserID
	}
	return submitter.AnonymousSessionID
}
