package services

import (
	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
)

// The review machine is a pure function over (current, target, actor). It
// performs no I/O; persistence applies a decision transactionally or not at
// all.
//
// Transition table:
//
//	submitted       -> in_review, accepted, declined   (curator)
//	submitted       -> deleted_by_user                 (owning submitter)
//	in_review       -> accepted, declined, submitted   (curator)
//	declined        -> submitted                       (curator re-open)
//	accepted        -> terminal
//	deleted_by_user -> terminal

var curatorTargets = map[entities.Status][]entities.Status{
	entities.StatusSubmitted: {entities.StatusInReview, entities.StatusAccepted, entities.StatusDeclined},
	entities.StatusInReview:  {entities.StatusAccepted, entities.StatusDeclined, entities.StatusSubmitted},
	entities.StatusDeclined:  {entities.StatusSubmitted},
}

// AllowedTargets lists every status the given actor may move the entry to
// from the current status.
func AllowedTargets(current entities.Status, role entities.ActorRole, isOwner bool) []entities.Status {
	switch role {
	case entities.ActorRoleCurator:
		return append([]entities.Status(nil), curatorTargets[current]...)
	case entities.ActorRoleSubmitter:
		if isOwner && current == entities.StatusSubmitted {
			return []entities.Status{entities.StatusDeletedByUser}
		}
	}
	return nil
}

// Decide validates one requested transition. A nil return means the caller
// may apply target as the entry's next status.
func Decide(current entities.Status, target entities.Status, role entities.ActorRole, isOwner bool) error {
	if current == entities.StatusNone {
		return domainerrors.ErrNotModerated
	}
	allowed := AllowedTargets(current, role, isOwner)
	for _, candidate := range allowed {
		if candidate == target {
			return nil
		}
	}
	hint := make([]string, 0, len(allowed))
	for _, candidate := range allowed {
		hint = append(hint, string(candidate))
	}
	return &domainerrors.TransitionError{
		From:    string(current),
		To:      string(target),
		Allowed: hint,
	}
}
