package httpserver

import (
	"errors"
	"net/http"
	"strings"

	moderationadapter "vitrine/contexts/creator-directory/moderation-service/adapters/http"
	moderationentities "vitrine/contexts/creator-directory/moderation-service/domain/entities"
	moderationerrors "vitrine/contexts/creator-directory/moderation-service/domain/errors"
	moderationhttp "vitrine/contexts/creator-directory/moderation-service/transport/http"
)

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	writeJSON(w, status, moderationhttp.ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	var transitionErr *moderationerrors.TransitionError

	switch {
	case errors.As(err, &transitionErr):
		writeDirectoryError(w, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error(), map[string]any{
			"from":            transitionErr.From,
			"to":              transitionErr.To,
			"allowed_targets": transitionErr.Allowed,
		})
	case errors.Is(err, moderationerrors.ErrInvalidTransition),
		errors.Is(err, moderationerrors.ErrNotModerated):
		writeDirectoryError(w, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error(), nil)
	case errors.Is(err, moderationerrors.ErrInvalidEntryInput),
		errors.Is(err, moderationerrors.ErrUnknownStatus):
		writeDirectoryError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	case errors.Is(err, moderationerrors.ErrEntryNotFound),
		errors.Is(err, moderationerrors.ErrHistoryNotAvailable):
		writeDirectoryError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, moderationerrors.ErrTransitionConflict):
		writeDirectoryError(w, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, moderationerrors.ErrForbidden),
		errors.Is(err, moderationerrors.ErrPayloadLocked):
		writeDirectoryError(w, http.StatusForbidden, "PERMISSION_DENIED", err.Error(), nil)
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

func directoryActor(r *http.Request) moderationentities.Actor {
	return moderationadapter.Actor(
		strings.TrimSpace(r.Header.Get("X-User-Role")),
		strings.TrimSpace(r.Header.Get("X-User-Id")),
		strings.TrimSpace(r.Header.Get("X-Session-Token")),
	)
}

func requireDirectorySubmitter(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	sessionID := strings.TrimSpace(r.Header.Get("X-Session-Token"))
	if userID == "" && sessionID == "" {
		writeDirectoryError(w, http.StatusUnauthorized, "SUBMITTER_REQUIRED",
			"X-User-Id or X-Session-Token header is required", nil)
		return "", "", false
	}
	return userID, sessionID, true
}

func (s *Server) handleCreateCreatorEntry(w http.ResponseWriter, r *http.Request) {
	s.handleCreateEntry(w, r, string(moderationentities.EntryKindCreator))
}

func (s *Server) handleCreateProofEntry(w http.ResponseWriter, r *http.Request) {
	s.handleCreateEntry(w, r, string(moderationentities.EntryKindProof))
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request, kind string) {
	userID, sessionID, ok := requireDirectorySubmitter(w, r)
	if !ok {
		return
	}

	var req moderationhttp.CreateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.moderation.Handler.CreateEntryHandler(r.Context(), kind, userID, sessionID, req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.moderation.Handler.ListEntriesHandler(
		r.Context(),
		query.Get("kind"),
		query.Get("status"),
		query.Get("submitter_user_id"),
		query.Get("anonymous_session_id"),
	)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	resp, err := s.moderation.Handler.GetEntryHandler(r.Context(), r.PathValue("entry_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requireDirectorySubmitter(w, r); !ok {
		return
	}

	var req moderationhttp.UpdateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.moderation.Handler.UpdateEntryHandler(r.Context(), directoryActor(r), r.PathValue("entry_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requireDirectorySubmitter(w, r); !ok {
		return
	}

	if err := s.moderation.Handler.DeleteEntryHandler(r.Context(), directoryActor(r), r.PathValue("entry_id")); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTransitionEntry(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requireDirectorySubmitter(w, r); !ok {
		return
	}

	var req moderationhttp.TransitionEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON", nil)
		return
	}

	resp, err := s.moderation.Handler.TransitionEntryHandler(r.Context(), directoryActor(r), r.PathValue("entry_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEntryHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.moderation.Handler.GetHistoryHandler(r.Context(), r.PathValue("entry_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
