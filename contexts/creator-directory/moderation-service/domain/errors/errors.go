package errors

import "errors"

var (
	ErrEntryNotFound       = errors.New("entry not found")
	ErrInvalidEntryInput   = errors.New("invalid entry input")
	ErrUnknownStatus       = errors.New("unknown review status")
	ErrInvalidTransition   = errors.New("status transition not permitted")
	ErrTransitionConflict  = errors.New("entry status changed concurrently")
	ErrNotModerated        = errors.New("entry does not participate in review")
	ErrForbidden           = errors.New("actor is not permitted to perform this operation")
	ErrPayloadLocked       = errors.New("entry payload is locked for submitter edits")
	ErrHistoryNotAvailable = errors.New("entry history is not available")
)
