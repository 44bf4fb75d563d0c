package http

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type CreateEntryRequest struct {
	Title   string         `json:"title"`
	Payload map[string]any `json:"payload"`
}

type UpdateEntryRequest struct {
	Title   string         `json:"title"`
	Payload map[string]any `json:"payload"`
}

type TransitionEntryRequest struct {
	TargetStatus string `json:"target_status"`
	Comment      string `json:"comment"`
}

type EntryDTO struct {
	EntryID            string         `json:"entry_id"`
	Kind               string         `json:"kind"`
	Title              string         `json:"title"`
	Payload            map[string]any `json:"payload,omitempty"`
	SubmitterUserID    string         `json:"submitter_user_id,omitempty"`
	AnonymousSessionID string         `json:"anonymous_session_id,omitempty"`
	Status             string         `json:"status,omitempty"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}

type HistoryRecordDTO struct {
	HistoryID      string `json:"history_id"`
	EntryID        string `json:"entry_id"`
	PreviousStatus string `json:"previous_status,omitempty"`
	NewStatus      string `json:"new_status"`
	ActorID        string `json:"actor_id"`
	ActorRole      string `json:"actor_role"`
	Comment        string `json:"comment,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CreateEntryResponse struct {
	Entry EntryDTO `json:"entry"`
}

type GetEntryResponse struct {
	Entry EntryDTO `json:"entry"`
}

type ListEntriesResponse struct {
	Items []EntryDTO `json:"items"`
}

type TransitionEntryResponse struct {
	Entry EntryDTO `json:"entry"`
}

type UpdateEntryResponse struct {
	Entry EntryDTO `json:"entry"`
}

type HistoryResponse struct {
	Items []HistoryRecordDTO `json:"items"`
}
