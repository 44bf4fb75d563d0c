package commands

import (
	"context"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/ordering-service/application"
	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/ordering-service/domain/errors"
	"vitrine/contexts/creator-directory/ordering-service/ports"
)

type InsertDefaultUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Execute appends a newly accepted entry to the end of the current ranking
// so it never jumps ahead of curated order. Safe to replay.
func (uc InsertDefaultUseCase) Execute(ctx context.Context, entry entities.RankedEntry) error {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(entry.EntryID) == "" {
		return domainerrors.ErrInvalidOrdering
	}
	if entry.CreatedAt.IsZero() && uc.Clock != nil {
		entry.CreatedAt = uc.Clock.Now().UTC()
	}

	if err := uc.Repository.InsertLast(ctx, entry); err != nil {
		return err
	}

	logger.Info("entry placed at end of ranking",
		"event", "ranking_entry_appended",
		"module", "creator-directory/ordering-service",
		"layer", "application",
		"entry_id", entry.EntryID,
	)
	return nil
}
