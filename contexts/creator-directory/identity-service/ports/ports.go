package ports

import (
	"context"
	"time"

	"vitrine/contexts/creator-directory/identity-service/domain/entities"
)

// Repository owns anonymous session rows and the submitter linkage on
// authored entries.
type Repository interface {
	CreateSession(ctx context.Context, session entities.AnonymousSession) error
	GetSession(ctx context.Context, sessionID string) (entities.AnonymousSession, error)
	// ClaimSession links the session to the user and stamps the user id on
	// every still-anonymous entry the session authored, in one transaction.
	// Claiming a session already linked to the same user is a no-op; a
	// session linked to a different user returns ErrIdentityConflict. The
	// returned count is the number of entries stamped.
	ClaimSession(ctx context.Context, sessionID string, userID string, claimedAt time.Time) (int, error)
}

// EntryClaimer is the slice of the entry store the in-memory repository
// needs to stamp claimed entries; the postgres repository updates the
// entries table directly inside the claim transaction.
type EntryClaimer interface {
	ClaimAuthoredEntries(ctx context.Context, sessionID string, userID string) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
