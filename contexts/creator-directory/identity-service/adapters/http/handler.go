package httpadapter

import (
	"context"
	"log/slog"

	"vitrine/contexts/creator-directory/identity-service/application/commands"
	httptransport "vitrine/contexts/creator-directory/identity-service/transport/http"
)

type Handler struct {
	ResolveSubmitter commands.ResolveSubmitterUseCase
	ClaimSession     commands.ClaimSessionUseCase
	Logger           *slog.Logger
}

func (h Handler) ResolveSubmitterHandler(
	ctx context.Context,
	userID string,
	req httptransport.ResolveSubmitterRequest,
) (httptransport.ResolveSubmitterResponse, error) {
	resolution, err := h.ResolveSubmitter.Execute(ctx, commands.ResolveSubmitterCommand{
		UserID:       userID,
		SessionToken: req.SessionToken,
	})
	if err != nil {
		return httptransport.ResolveSubmitterResponse{}, err
	}
	return httptransport.ResolveSubmitterResponse{
		UserID:             resolution.UserID,
		AnonymousSessionID: resolution.AnonymousSessionID,
		Minted:             resolution.Minted,
	}, nil
}

func (h Handler) ClaimSessionHandler(
	ctx context.Context,
	sessionID string,
	req httptransport.ClaimSessionRequest,
) (httptransport.ClaimSessionResponse, error) {
	err := h.ClaimSession.Execute(ctx, commands.ClaimSessionCommand{
		SessionID: sessionID,
		UserID:    req.UserID,
	})
	if err != nil {
		return httptransport.ClaimSessionResponse{}, err
	}
	return httptransport.ClaimSessionResponse{
		SessionID: sessionID,
		UserID:    req.UserID,
	}, nil
}
