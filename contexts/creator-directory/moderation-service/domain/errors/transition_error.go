package errors

import (
	"fmt"
	"strings"
)

// TransitionError is returned when a requested transition is not in the
// machine table. It carries the transitions that would have been allowed so
// transports can surface a recovery hint, and unwraps to ErrInvalidTransition
// so callers keep matching with errors.Is.
type TransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *TransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("status transition %s -> %s not permitted (no transitions available)", e.From, e.To)
	}
	return fmt.Sprintf("status transition %s -> %s not permitted (allowed: %s)", e.From, e.To, strings.Join(e.Allowed, ", "))
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
