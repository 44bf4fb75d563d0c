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

type DeleteEntryCommand struct {
	EntryID string
	Actor   entities.Actor
}

type DeleteEntryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// Execute hard-deletes an entry. This is distinct from the deleted_by_user
// soft status: the row is removed at any status, bypassing the machine, and
// the entry's history rows cascade with it. Curators only.
func (uc DeleteEntryUseCase) Execute(ctx context.Context, cmd DeleteEntryCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	if !cmd.Actor.IsCurator() {
		return domainerrors.ErrForbidden
	}

	entryID := strings.TrimSpace(cmd.EntryID)
	if err := uc.Repository.DeleteEntry(ctx, entryID); err != nil {
		return err
	}

	logger.Info("entry hard deleted",
		"event", "entry_hard_deleted",
		"module", "creator-directory/moderation-service",
		"layer", "application",
		"entry_id", entryID,
		"actor_id", actorID(cmd.Actor),
	)
	return nil
}
