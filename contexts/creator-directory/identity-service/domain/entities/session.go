package entities

import (
	"strings"
	"time"
)

// AnonymousSession is a server-minted identity for submitters who have not
// authenticated. The session id doubles as the token handed back to the
// caller for reuse across a browser session. It is immutable once issued and
// may be linked to a user exactly once.
type AnonymousSession struct {
	SessionID    string
	LinkedUserID string
	CreatedAt    time.Time
	ClaimedAt    *time.Time
}

func (s AnonymousSession) IsClaimed() bool {
	return s.LinkedUserID != ""
}

// Resolution is the canonical submitter reference produced for a request.
// Exactly one of UserID or AnonymousSessionID is the active identity.
type Resolution struct {
	UserID             string
	AnonymousSessionID string
	// Minted reports that a fresh anonymous session was created for this
	// call; transports hand the session id back to the caller.
	Minted bool
}

func UserResolution(userID string) Resolution {
	return Resolution{UserID: strings.TrimSpace(userID)}
}

func AnonymousResolution(sessionID string, minted bool) Resolution {
	return Resolution{AnonymousSessionID: strings.TrimSpace(sessionID), Minted: minted}
}
