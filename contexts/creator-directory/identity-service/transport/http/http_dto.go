package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ResolveSubmitterRequest struct {
	SessionToken string `json:"session_token,omitempty"`
}

type ResolveSubmitterResponse struct {
	UserID             string `json:"user_id,omitempty"`
	AnonymousSessionID string `json:"anonymous_session_id,omitempty"`
	Minted             bool   `json:"minted"`
}

type ClaimSessionRequest struct {
	UserID string `json:"user_id"`
}

type ClaimSessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}
