package queries

import (
	"context"
	"log/slog"
	"strings"

	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	"vitrine/contexts/creator-directory/moderation-service/ports"
)

type ListEntriesQuery struct {
	Kind      string
	Status    string
	UserID    string
	SessionID string
}

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) GetEntry(ctx context.Context, entryID string) (entities.Entry, error) {
	return uc.Repository.GetEntry(ctx, strings.TrimSpace(entryID))
}

func (uc QueryUseCase) ListEntries(ctx context.Context, query ListEntriesQuery) ([]entities.Entry, error) {
	filter := ports.EntryFilter{
		UserID:    strings.TrimSpace(query.UserID),
		SessionID: strings.TrimSpace(query.SessionID),
	}
	if kind, ok := entities.ParseEntryKind(query.Kind); ok {
		filter.Kind = kind
	}
	if status, ok := entities.ParseStatus(query.Status); ok {
		filter.Status = status
	}
	return uc.Repository.ListEntries(ctx, filter)
}

// GetHistory returns the full audit trail for one entry, oldest record
// first. Hard-deleted entries have no retrievable history.
func (uc QueryUseCase) GetHistory(ctx context.Context, entryID string) ([]entities.HistoryRecord, error) {
	return uc.Repository.ListHistory(ctx, strings.TrimSpace(entryID))
}
