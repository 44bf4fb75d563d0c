package httpserver

import (
	"errors"
	"net/http"
	"strings"

	orderingerrors "vitrine/contexts/creator-directory/ordering-service/domain/errors"
	orderinghttp "vitrine/contexts/creator-directory/ordering-service/transport/http"
)

func writeOrderingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeOrderingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderingerrors.ErrInvalidOrdering):
		writeOrderingError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, orderingerrors.ErrRankedEntryNotFound):
		writeOrderingError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, orderingerrors.ErrEntryNotRankable):
		writeOrderingError(w, http.StatusUnprocessableEntity, "NOT_RANKABLE", err.Error())
	case errors.Is(err, orderingerrors.ErrReorderConflict):
		writeOrderingError(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, orderingerrors.ErrForbidden):
		writeOrderingError(w, http.StatusForbidden, "PERMISSION_DENIED", err.Error())
	default:
		writeOrderingError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func (s *Server) handleListRanking(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ordering.Handler.ListRankingHandler(r.Context())
	if err != nil {
		writeOrderingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReorderRanking(w http.ResponseWriter, r *http.Request) {
	actorID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if actorID == "" {
		writeOrderingError(w, http.StatusUnauthorized, "USER_REQUIRED", "X-User-Id header is required")
		return
	}
	isCurator := strings.EqualFold(strings.TrimSpace(r.Header.Get("X-User-Role")), "curator")

	var req orderinghttp.ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeOrderingError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}

	if err := s.ordering.Handler.ReorderHandler(r.Context(), actorID, isCurator, req); err != nil {
		writeOrderingDomainError(w, err)
		return
	}

	resp, err := s.ordering.Handler.ListRankingHandler(r.Context())
	if err != nil {
		writeOrderingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
