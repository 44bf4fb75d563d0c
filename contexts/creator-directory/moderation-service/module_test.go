package moderationservice_test

import (
	"context"
	"errors"
	"testing"

	moderationservice "vitrine/contexts/creator-directory/moderation-service"
	httpadapter "vitrine/contexts/creator-directory/moderation-service/adapters/http"
	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	domainerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	httptransport "vitrine/contexts/creator-directory/moderation-service/transport/http"
)

func submitEntry(t *testing.T, module moderationservice.Module, userID string, sessionID string) string {
	t.Helper()
	resp, err := module.Handler.CreateEntryHandler(context.Background(), "creator", userID, sessionID, httptransport.CreateEntryRequest{
		Title:   "clip compilation channel",
		Payload: map[string]any{"platform": "twitch"},
	})
	if err != nil {
		t.Fatalf("create entry failed: %v", err)
	}
	if resp.Entry.Status != string(entities.StatusSubmitted) {
		t.Fatalf("expected new entry in submitted, got %s", resp.Entry.Status)
	}
	return resp.Entry.EntryID
}

func transition(t *testing.T, module moderationservice.Module, actor entities.Actor, entryID string, target string) error {
	t.Helper()
	_, err := module.Handler.TransitionEntryHandler(context.Background(), actor, entryID, httptransport.TransitionEntryRequest{
		TargetStatus: target,
	})
	return err
}

func TestReviewWorkflowHappyPath(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")

	entryID := submitEntry(t, module, "user-1", "")

	if err := transition(t, module, curator, entryID, "in_review"); err != nil {
		t.Fatalf("claim for review failed: %v", err)
	}
	if err := transition(t, module, curator, entryID, "accepted"); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	history, err := module.Handler.GetHistoryHandler(context.Background(), entryID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Items) != 3 {
		t.Fatalf("expected creation + two transitions, got %d records", len(history.Items))
	}
	if history.Items[0].PreviousStatus != "" || history.Items[0].NewStatus != "submitted" {
		t.Fatalf("unexpected creation record: %+v", history.Items[0])
	}
	if history.Items[2].NewStatus != "accepted" {
		t.Fatalf("expected final record accepted, got %+v", history.Items[2])
	}
}

func TestSubmitterCannotDeleteOnceInReview(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")
	owner := httpadapter.Actor("submitter", "user-1", "")

	entryID := submitEntry(t, module, "user-1", "")
	if err := transition(t, module, curator, entryID, "in_review"); err != nil {
		t.Fatalf("claim for review failed: %v", err)
	}

	err := transition(t, module, owner, entryID, "deleted_by_user")
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for owner delete after claim, got %v", err)
	}

	history, err := module.Handler.GetHistoryHandler(context.Background(), entryID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Items) != 2 {
		t.Fatalf("rejected transition must not append history, got %d records", len(history.Items))
	}
}

func TestAcceptedIsTerminal(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")

	entryID := submitEntry(t, module, "user-1", "")
	if err := transition(t, module, curator, entryID, "accepted"); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	for _, target := range []string{"submitted", "in_review", "declined"} {
		if err := transition(t, module, curator, entryID, target); !errors.Is(err, domainerrors.ErrInvalidTransition) {
			t.Fatalf("expected accepted terminal, %s returned %v", target, err)
		}
	}
}

func TestDeclinedEntryCanBeReopened(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")

	entryID := submitEntry(t, module, "user-1", "")
	if err := transition(t, module, curator, entryID, "declined"); err != nil {
		t.Fatalf("decline failed: %v", err)
	}
	if err := transition(t, module, curator, entryID, "submitted"); err != nil {
		t.Fatalf("re-open failed: %v", err)
	}

	resp, err := module.Handler.GetEntryHandler(context.Background(), entryID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if resp.Entry.Status != "submitted" {
		t.Fatalf("expected re-opened entry in submitted, got %s", resp.Entry.Status)
	}
}

func TestUnknownTargetStatusRejected(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")

	entryID := submitEntry(t, module, "user-1", "")
	err := transition(t, module, curator, entryID, "archived")
	if !errors.Is(err, domainerrors.ErrUnknownStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestPayloadEditsLockAfterClaim(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")
	owner := httpadapter.Actor("submitter", "user-1", "")

	entryID := submitEntry(t, module, "user-1", "")

	if _, err := module.Handler.UpdateEntryHandler(context.Background(), owner, entryID, httptransport.UpdateEntryRequest{
		Title:   "updated title",
		Payload: map[string]any{"platform": "youtube"},
	}); err != nil {
		t.Fatalf("edit while submitted failed: %v", err)
	}

	if err := transition(t, module, curator, entryID, "in_review"); err != nil {
		t.Fatalf("claim for review failed: %v", err)
	}

	_, err := module.Handler.UpdateEntryHandler(context.Background(), owner, entryID, httptransport.UpdateEntryRequest{
		Title: "too late",
	})
	if !errors.Is(err, domainerrors.ErrPayloadLocked) {
		t.Fatalf("expected payload locked after claim, got %v", err)
	}
}

func TestPayloadEditsRequireOwnership(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	stranger := httpadapter.Actor("submitter", "user-2", "")

	entryID := submitEntry(t, module, "user-1", "")
	_, err := module.Handler.UpdateEntryHandler(context.Background(), stranger, entryID, httptransport.UpdateEntryRequest{
		Title: "hijacked",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner edit, got %v", err)
	}
}

func TestHardDeleteIsCuratorOnly(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)
	curator := httpadapter.Actor("curator", "curator-1", "")
	owner := httpadapter.Actor("submitter", "user-1", "")

	entryID := submitEntry(t, module, "user-1", "")

	if err := module.Handler.DeleteEntryHandler(context.Background(), owner, entryID); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for submitter hard delete, got %v", err)
	}
	if err := module.Handler.DeleteEntryHandler(context.Background(), curator, entryID); err != nil {
		t.Fatalf("curator hard delete failed: %v", err)
	}
	if _, err := module.Handler.GetEntryHandler(context.Background(), entryID); !errors.Is(err, domainerrors.ErrEntryNotFound) {
		t.Fatalf("expected entry gone after hard delete, got %v", err)
	}
}

func TestListEntriesFiltersBySubmitter(t *testing.T) {
	module := moderationservice.NewInMemoryModule(nil, nil)

	submitEntry(t, module, "user-1", "")
	submitEntry(t, module, "", "sess-1")

	mine, err := module.Handler.ListEntriesHandler(context.Background(), "", "", "user-1", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine.Items) != 1 || mine.Items[0].SubmitterUserID != "user-1" {
		t.Fatalf("expected one entry for user-1, got %+v", mine.Items)
	}

	anonymous, err := module.Handler.ListEntriesHandler(context.Background(), "", "", "", "sess-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(anonymous.Items) != 1 || anonymous.Items[0].AnonymousSessionID != "sess-1" {
		t.Fatalf("expected one entry for sess-1, got %+v", anonymous.Items)
	}
}
