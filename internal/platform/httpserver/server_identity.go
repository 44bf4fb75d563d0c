package httpserver

import (
	"errors"
	"net/http"
	"strings"

	identityerrors "vitrine/contexts/creator-directory/identity-service/domain/errors"
	identityhttp "vitrine/contexts/creator-directory/identity-service/transport/http"
)

func writeIdentityError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, identityhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeIdentityDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identityerrors.ErrInvalidIdentityInput):
		writeIdentityError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, identityerrors.ErrSessionNotFound):
		writeIdentityError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, identityerrors.ErrIdentityConflict):
		writeIdentityError(w, http.StatusConflict, "IDENTITY_CONFLICT", err.Error())
	default:
		writeIdentityError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func (s *Server) handleResolveSubmitter(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.ResolveSubmitterRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeIdentityError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
			return
		}
	}
	if strings.TrimSpace(req.SessionToken) == "" {
		req.SessionToken = strings.TrimSpace(r.Header.Get("X-Session-Token"))
	}

	resp, err := s.identity.Handler.ResolveSubmitterHandler(
		r.Context(),
		strings.TrimSpace(r.Header.Get("X-User-Id")),
		req,
	)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClaimSession(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.ClaimSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeIdentityError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		req.UserID = strings.TrimSpace(r.Header.Get("X-User-Id"))
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeIdentityError(w, http.StatusUnauthorized, "USER_REQUIRED", "X-User-Id header or user_id is required")
		return
	}

	resp, err := s.identity.Handler.ClaimSessionHandler(r.Context(), r.PathValue("session_id"), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
