package queries

import (
	"context"
	"log/slog"

	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	"vitrine/contexts/creator-directory/ordering-service/ports"
)

type QueryUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc QueryUseCase) ListRanked(ctx context.Context) ([]entities.RankedEntry, error) {
	return uc.Repository.ListRanked(ctx)
}
