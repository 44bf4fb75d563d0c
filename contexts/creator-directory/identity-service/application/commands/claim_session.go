package commands

import (
	"context"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/identity-service/application"
	domainerrors "vitrine/contexts/creator-directory/identity-service/domain/errors"
	"vitrine/contexts/creator-directory/identity-service/ports"
)

type ClaimSessionCommand struct {
	SessionID string
	UserID    string
}

type ClaimSessionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Execute links a previously-anonymous session's authored entries to the
// authenticated user. Idempotent for the same user; a session linked to a
// different user is never overwritten. Claiming is not a moderation
// transition and appends no history record.
func (uc ClaimSessionUseCase) Execute(ctx context.Context, cmd ClaimSessionCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	sessionID := strings.TrimSpace(cmd.SessionID)
	userID := strings.TrimSpace(cmd.UserID)
	if sessionID == "" || userID == "" {
		return domainerrors.ErrInvalidIdentityInput
	}

	session, err := uc.Repository.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.LinkedUserID == userID {
		return nil
	}
	if session.IsClaimed() {
		return domainerrors.ErrIdentityConflict
	}

	claimed, err := uc.Repository.ClaimSession(ctx, sessionID, userID, uc.Clock.Now().UTC())
	if err != nil {
		return err
	}

	logger.Info("anonymous session claimed",
		"event", "anonymous_session_claimed",
		"module", "creator-directory/identity-service",
		"layer", "application",
		"session_id", sessionID,
		"user_id", userID,
		"entries_claimed", claimed,
	)
	return nil
}
