package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "vitrine/contexts/creator-directory/identity-service/application"
	"vitrine/contexts/creator-directory/identity-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/identity-service/domain/errors"
	"vitrine/contexts/creator-directory/identity-service/ports"
)

type ResolveSubmitterCommand struct {
	// UserID is the verified bearer principal, when present.
	UserID string
	// SessionToken is the anonymous session id previously handed to the
	// caller, when present.
	SessionToken string
}

type ResolveSubmitterUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Execute resolves request credentials to a canonical submitter reference.
// A bearer principal always wins; a known session token resolves to its
// session; anything else mints a fresh anonymous session.
func (uc ResolveSubmitterUseCase) Execute(ctx context.Context, cmd ResolveSubmitterCommand) (entities.Resolution, error) {
	logger := application.ResolveLogger(uc.Logger)

	if userID := strings.TrimSpace(cmd.UserID); userID != "" {
		return entities.UserResolution(userID), nil
	}

	if token := strings.TrimSpace(cmd.SessionToken); token != "" {
		session, err := uc.Repository.GetSession(ctx, token)
		if err == nil {
			return entities.AnonymousResolution(session.SessionID, false), nil
		}
		if !errors.Is(err, domainerrors.ErrSessionNotFound) {
			return entities.Resolution{}, err
		}
	}

	sessionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Resolution{}, err
	}
	session := entities.AnonymousSession{
		SessionID: sessionID,
		CreatedAt: uc.Clock.Now().UTC(),
	}
	if err := uc.Repository.CreateSession(ctx, session); err != nil {
		return entities.Resolution{}, err
	}

	logger.Info("anonymous session minted",
		"event", "anonymous_session_minted",
		"module", "creator-directory/identity-service",
		"layer", "application",
		"session_id", session.SessionID,
	)
	return entities.AnonymousResolution(session.SessionID, true), nil
}
