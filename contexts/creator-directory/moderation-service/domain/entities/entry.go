package entities

import (
	"strings"
	"time"
)

type EntryKind string

const (
	EntryKindCreator EntryKind = "creator"
	EntryKindProof   EntryKind = "proof"
)

func ParseEntryKind(raw string) (EntryKind, bool) {
	switch EntryKind(strings.TrimSpace(raw)) {
	case EntryKindCreator:
		return EntryKindCreator, true
	case EntryKindProof:
		return EntryKindProof, true
	default:
		return "", false
	}
}

type Status string

// StatusNone marks entries created directly by an administrator. They carry
// no review state and never enter the transition machine.
const StatusNone Status = ""

const (
	StatusSubmitted     Status = "submitted"
	StatusInReview      Status = "in_review"
	StatusAccepted      Status = "accepted"
	StatusDeclined      Status = "declined"
	StatusDeletedByUser Status = "deleted_by_user"
)

// ParseStatus rejects any string outside the closed review status enum.
// Boundary adapters call this before anything reaches the machine.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.TrimSpace(raw)) {
	case StatusSubmitted:
		return StatusSubmitted, true
	case StatusInReview:
		return StatusInReview, true
	case StatusAccepted:
		return StatusAccepted, true
	case StatusDeclined:
		return StatusDeclined, true
	case StatusDeletedByUser:
		return StatusDeletedByUser, true
	default:
		return StatusNone, false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeletedByUser
}

type ActorRole string

const (
	ActorRoleSubmitter ActorRole = "submitter"
	ActorRoleCurator   ActorRole = "curator"
)

// Submitter attributes an entry to exactly one active identity: a user id,
// or an anonymous session id until the session is claimed. A claimed entry
// keeps its anonymous session id for traceability; the user id is then the
// active identity.
type Submitter struct {
	UserID             string
	AnonymousSessionID string
}

func NewUserSubmitter(userID string) Submitter {
	return Submitter{UserID: strings.TrimSpace(userID)}
}

func NewAnonymousSubmitter(sessionID string) Submitter {
	return Submitter{AnonymousSessionID: strings.TrimSpace(sessionID)}
}

func (s Submitter) IsZero() bool {
	return s.UserID == "" && s.AnonymousSessionID == ""
}

// ActiveUserID is empty while the submitter is still anonymous.
func (s Submitter) ActiveUserID() string {
	return s.UserID
}

// Owns reports whether the acting identity authored entries attributed to
// this submitter. A claimed submitter matches on user id only; the retained
// anonymous session id no longer grants ownership to the session holder.
func (s Submitter) Owns(actor Actor) bool {
	if s.UserID != "" {
		return actor.UserID != "" && actor.UserID == s.UserID
	}
	return actor.AnonymousSessionID != "" && actor.AnonymousSessionID == s.AnonymousSessionID
}

// Actor is the already-verified principal performing an operation.
type Actor struct {
	Role               ActorRole
	UserID             string
	AnonymousSessionID string
}

func (a Actor) IsCurator() bool {
	return a.Role == ActorRoleCurator
}

type Entry struct {
	EntryID   string
	Kind      EntryKind
	Title     string
	Payload   map[string]any
	Submitter Submitter
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Entry) ValidateCreate() bool {
	return e.Kind != "" &&
		strings.TrimSpace(e.Title) != "" &&
		!e.Submitter.IsZero()
}

// HistoryRecord is one append-only audit row. PreviousStatus is StatusNone
// for the creation record only.
type HistoryRecord struct {
	HistoryID      string
	EntryID        string
	PreviousStatus Status
	NewStatus      Status
	ActorID        string
	ActorRole      ActorRole
	Comment        string
	CreatedAt      time.Time
}
