package services

import (
	"errors"
	"testing"

	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
)

var allStatuses = []entities.Status{
	entities.StatusSubmitted,
	entities.StatusInReview,
	entities.StatusAccepted,
	entities.StatusDeclined,
	entities.StatusDeletedByUser,
}

type transitionCase struct {
	from    entities.Status
	to      entities.Status
	role    entities.ActorRole
	isOwner bool
}

// The complete allow-list. Every combination outside it must be rejected.
var allowedTransitions = map[transitionCase]bool{
	{entities.StatusSubmitted, entities.StatusInReview, entities.ActorRoleCurator, false}: true,
	{entities.StatusSubmitted, entities.StatusAccepted, entities.ActorRoleCurator, false}: true,
	{entities.StatusSubmitted, entities.StatusDeclined, entities.ActorRoleCurator, false}: true,
	{entities.StatusInReview, entities.StatusAccepted, entities.ActorRoleCurator, false}:  true,
	{entities.StatusInReview, entities.StatusDeclined, entities.ActorRoleCurator, false}:  true,
	{entities.StatusInReview, entities.StatusSubmitted, entities.ActorRoleCurator, false}: true,
	{entities.StatusDeclined, entities.StatusSubmitted, entities.ActorRoleCurator, false}: true,

	{entities.StatusSubmitted, entities.StatusDeletedByUser, entities.ActorRoleSubmitter, true}: true,
}

func TestDecideMatchesTransitionTable(t *testing.T) {
	roles := []entities.ActorRole{entities.ActorRoleCurator, entities.ActorRoleSubmitter}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			for _, role := range roles {
				for _, isOwner := range []bool{false, true} {
					key := transitionCase{from, to, role, isOwner}
					// Curator rights do not depend on ownership.
					if role == entities.ActorRoleCurator {
						key.isOwner = false
					}
					err := Decide(from, to, role, isOwner)
					if allowedTransitions[key] {
						if err != nil {
							t.Errorf("Decide(%s -> %s, %s, owner=%v) = %v, want allowed", from, to, role, isOwner, err)
						}
						continue
					}
					if !errors.Is(err, domainerrors.ErrInvalidTransition) {
						t.Errorf("Decide(%s -> %s, %s, owner=%v) = %v, want ErrInvalidTransition", from, to, role, isOwner, err)
					}
				}
			}
		}
	}
}

func TestDecideRejectsUnmoderatedEntry(t *testing.T) {
	err := Decide(entities.StatusNone, entities.StatusAccepted, entities.ActorRoleCurator, false)
	if !errors.Is(err, domainerrors.ErrNotModerated) {
		t.Fatalf("expected ErrNotModerated for empty current status, got %v", err)
	}
}

func TestDecideCarriesAllowedTargetsHint(t *testing.T) {
	err := Decide(entities.StatusDeclined, entities.StatusAccepted, entities.ActorRoleCurator, false)

	var transitionErr *domainerrors.TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *TransitionError, got %v", err)
	}
	if len(transitionErr.Allowed) != 1 || transitionErr.Allowed[0] != string(entities.StatusSubmitted) {
		t.Fatalf("expected allowed hint [submitted], got %v", transitionErr.Allowed)
	}
}

func TestTerminalStatusesHaveNoTargets(t *testing.T) {
	for _, status := range []entities.Status{entities.StatusAccepted, entities.StatusDeletedByUser} {
		if targets := AllowedTargets(status, entities.ActorRoleCurator, false); len(targets) != 0 {
			t.Errorf("expected no curator targets from terminal %s, got %v", status, targets)
		}
		if targets := AllowedTargets(status, entities.ActorRoleSubmitter, true); len(targets) != 0 {
			t.Errorf("expected no submitter targets from terminal %s, got %v", status, targets)
		}
	}
}

func TestSubmitterCannotDeleteOthersEntry(t *testing.T) {
	err := Decide(entities.StatusSubmitted, entities.StatusDeletedByUser, entities.ActorRoleSubmitter, false)
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for non-owner delete, got %v", err)
	}
}
