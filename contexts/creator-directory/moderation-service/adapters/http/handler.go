package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"vitrine/contexts/creator-directory/moderation-service/application/commands"
	"vitrine/contexts/creator-directory/moderation-service/application/queries"
	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	httptransport "vitrine/contexts/creator-directory/moderation-service/transport/http"
)

type Handler struct {
	CreateEntry     commands.CreateEntryUseCase
	TransitionEntry commands.TransitionEntryUseCase
	UpdatePayload   commands.UpdatePayloadUseCase
	DeleteEntry     commands.DeleteEntryUseCase
	Queries         queries.QueryUseCase
	Logger          *slog.Logger
}

// Actor builds the acting principal from already-verified header identity.
func Actor(role string, userID string, sessionID string) entities.Actor {
	actorRole := entities.ActorRoleSubmitter
	if role == string(entities.ActorRoleCurator) {
		actorRole = entities.ActorRoleCurator
	}
	return entities.Actor{
		Role:               actorRole,
		UserID:             userID,
		AnonymousSessionID: sessionID,
	}
}

func (h Handler) CreateEntryHandler(
	ctx context.Context,
	kind string,
	submitterUserID string,
	submitterSessionID string,
	req httptransport.CreateEntryRequest,
) (httptransport.CreateEntryResponse, error) {
	entryKind, ok := entities.ParseEntryKind(kind)
	if !ok {
		return httptransport.CreateEntryResponse{}, domainerrors.ErrInvalidEntryInput
	}

	submitter := entities.NewAnonymousSubmitter(submitterSessionID)
	if submitterUserID != "" {
		submitter = entities.NewUserSubmitter(submitterUserID)
	}

	item, err := h.CreateEntry.Execute(ctx, commands.CreateEntryCommand{
		Kind:      entryKind,
		Title:     req.Title,
		Payload:   req.Payload,
		Submitter: submitter,
	})
	if err != nil {
		return httptransport.CreateEntryResponse{}, err
	}
	return httptransport.CreateEntryResponse{Entry: mapEntry(item)}, nil
}

func (h Handler) GetEntryHandler(ctx context.Context, entryID string) (httptransport.GetEntryResponse, error) {
	item, err := h.Queries.GetEntry(ctx, entryID)
	if err != nil {
		return httptransport.GetEntryResponse{}, err
	}
	return httptransport.GetEntryResponse{Entry: mapEntry(item)}, nil
}

func (h Handler) ListEntriesHandler(
	ctx context.Context,
	kind string,
	status string,
	userID string,
	sessionID string,
) (httptransport.ListEntriesResponse, error) {
	items, err := h.Queries.ListEntries(ctx, queries.ListEntriesQuery{
		Kind:      kind,
		Status:    status,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return httptransport.ListEntriesResponse{}, err
	}
	result := make([]httptransport.EntryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapEntry(item))
	}
	return httptransport.ListEntriesResponse{Items: result}, nil
}

func (h Handler) TransitionEntryHandler(
	ctx context.Context,
	actor entities.Actor,
	entryID string,
	req httptransport.TransitionEntryRequest,
) (httptransport.TransitionEntryResponse, error) {
	target, ok := entities.ParseStatus(req.TargetStatus)
	if !ok {
		return httptransport.TransitionEntryResponse{}, domainerrors.ErrUnknownStatus
	}
	item, err := h.TransitionEntry.Execute(ctx, commands.TransitionEntryCommand{
		EntryID: entryID,
		Target:  target,
		Actor:   actor,
		Comment: req.Comment,
	})
	if err != nil {
		return httptransport.TransitionEntryResponse{}, err
	}
	return httptransport.TransitionEntryResponse{Entry: mapEntry(item)}, nil
}

func (h Handler) UpdateEntryHandler(
	ctx context.Context,
	actor entities.Actor,
	entryID string,
	req httptransport.UpdateEntryRequest,
) (httptransport.UpdateEntryResponse, error) {
	item, err := h.UpdatePayload.Execute(ctx, commands.UpdatePayloadCommand{
		EntryID: entryID,
		Actor:   actor,
		Title:   req.Title,
		Payload: req.Payload,
	})
	if err != nil {
		return httptransport.UpdateEntryResponse{}, err
	}
	return httptransport.UpdateEntryResponse{Entry: mapEntry(item)}, nil
}

func (h Handler) DeleteEntryHandler(ctx context.Context, actor entities.Actor, entryID string) error {
	return h.DeleteEntry.Execute(ctx, commands.DeleteEntryCommand{
		EntryID: entryID,
		Actor:   actor,
	})
}

func (h Handler) GetHistoryHandler(ctx context.Context, entryID string) (httptransport.HistoryResponse, error) {
	records, err := h.Queries.GetHistory(ctx, entryID)
	if err != nil {
		return httptransport.HistoryResponse{}, err
	}
	items := make([]httptransport.HistoryRecordDTO, 0, len(records))
	for _, record := range records {
		items = append(items, mapHistoryRecord(record))
	}
	return httptransport.HistoryResponse{Items: items}, nil
}

func mapEntry(item entities.Entry) httptransport.EntryDTO {
	return httptransport.EntryDTO{
		EntryID:            item.EntryID,
		Kind:               string(item.Kind),
		Title:              item.Title,
		Payload:            item.Payload,
		SubmitterUserID:    item.Submitter.UserID,
		AnonymousSessionID: item.Submitter.AnonymousSessionID,
		Status:             string(item.Status),
		CreatedAt:          item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapHistoryRecord(record entities.HistoryRecord) httptransport.HistoryRecordDTO {
	return httptransport.HistoryRecordDTO{
		HistoryID:      record.HistoryID,
		EntryID:        record.EntryID,
		PreviousStatus: string(record.PreviousStatus),
		NewStatus:      string(record.NewStatus),
		ActorID:        record.ActorID,
		ActorRole:      string(record.ActorRole),
		Comment:        record.Comment,
		CreatedAt:      record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
