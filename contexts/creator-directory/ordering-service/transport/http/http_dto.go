package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReorderRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

type RankedEntryDTO struct {
	EntryID   string `json:"entry_id"`
	Kind      string `json:"kind"`
	Position  *int   `json:"position,omitempty"`
	CreatedAt string `json:"created_at"`
}

type RankingResponse struct {
	Items []RankedEntryDTO `json:"items"`
}
