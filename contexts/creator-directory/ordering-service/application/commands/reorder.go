package commands

import (
	"context"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/ordering-service/application"
	domainerrors "vitrine/contexts/creator-directory/ordering-service/domain/errors"
	"vitrine/contexts/creator-directory/ordering-service/ports"
)

type ReorderCommand struct {
	OrderedEntryIDs []string
	ActorID         string
	IsCurator       bool
}

type ReorderUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// Execute replaces the curated ranking with the given order. Callers pass
// the full visible set they are reordering; entries left out keep their
// prior position value.
func (uc ReorderUseCase) Execute(ctx context.Context, cmd ReorderCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	if !cmd.IsCurator {
		return domainerrors.ErrForbidden
	}
	if len(cmd.OrderedEntryIDs) == 0 {
		return domainerrors.ErrInvalidOrdering
	}

	ordered := make([]string, 0, len(cmd.OrderedEntryIDs))
	seen := make(map[string]struct{}, len(cmd.OrderedEntryIDs))
	for _, raw := range cmd.OrderedEntryIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			return domainerrors.ErrInvalidOrdering
		}
		if _, duplicate := seen[id]; duplicate {
			return domainerrors.ErrInvalidOrdering
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	if err := uc.Repository.Reorder(ctx, ordered); err != nil {
		return err
	}

	logger.Info("ranking reordered",
		"event", "ranking_reordered",
		"module", "creator-directory/ordering-service",
		"layer", "application",
		"entry_count", len(ordered),
		"actor_id", cmd.ActorID,
	)
	return nil
}
