package errors

import "errors"

var (
	ErrSessionNotFound      = errors.New("anonymous session not found")
	ErrIdentityConflict     = errors.New("anonymous session already claimed by a different user")
	ErrInvalidIdentityInput = errors.New("invalid identity input")
)
