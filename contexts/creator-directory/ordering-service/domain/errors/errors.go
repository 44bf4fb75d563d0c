package errors

import "errors"

var (
	ErrRankedEntryNotFound = errors.New("ranked entry not found")
	ErrEntryNotRankable    = errors.New("entry is not accepted and cannot be ranked")
	ErrInvalidOrdering     = errors.New("invalid ordering input")
	ErrReorderConflict     = errors.New("ranking changed concurrently")
	ErrForbidden           = errors.New("actor is not permitted to reorder")
)
