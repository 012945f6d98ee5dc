package state

import "fmt"

// InvariantViolation is returned by Commit when a candidate game state
// fails validation. Field names the offending field.
type InvariantViolation struct {
	Field  string
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation on %s: %s", e.Field, e.Reason)
}

func IsInvariantViolation(err error) bool {
	_, ok := err.(*InvariantViolation)
	return ok
}
