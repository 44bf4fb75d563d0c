package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vitrine/contexts/creator-directory/ordering-service/application/commands"
	"vitrine/contexts/creator-directory/ordering-service/application/queries"
	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	httptransport "vitrine/contexts/creator-directory/ordering-service/transport/http"
)

type Handler struct {
	Reorder       commands.ReorderUseCase
	InsertDefault commands.InsertDefaultUseCase
	Queries       queries.QueryUseCase
	Logger        *slog.Logger
}

func (h Handler) ReorderHandler(
	ctx context.Context,
	actorID string,
	isCurator bool,
	req httptransport.ReorderRequest,
) error {
	return h.Reorder.Execute(ctx, commands.ReorderCommand{
		OrderedEntryIDs: req.EntryIDs,
		ActorID:         actorID,
		IsCurator:       isCurator,
	})
}

func (h Handler) ListRankingHandler(ctx context.Context) (httptransport.RankingResponse, error) {
	items, err := h.Queries.ListRanked(ctx)
	if err != nil {
		return httptransport.RankingResponse{}, err
	}
	result := make([]httptransport.RankedEntryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapRankedEntry(item))
	}
	return httptransport.RankingResponse{Items: result}, nil
}

func mapRankedEntry(item entities.RankedEntry) httptransport.RankedEntryDTO {
	return httptransport.RankedEntryDTO{
		EntryID:   item.EntryID,
		Kind:      item.Kind,
		Position:  item.Position,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
