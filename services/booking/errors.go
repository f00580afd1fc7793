package booking

import "fmt"

// ConflictError reports that a slot is already taken by an active session
// for the same therapist. It is recoverable: the caller picks another slot.
type ConflictError struct {
	TherapistName string
	Date          string
	Time          string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("therapist %s already has a session on %s at %s", e.TherapistName, e.Date, e.Time)
}

// InvalidTransitionError reports a status change rejected before any write,
// either from a terminal state or to an unrecognized status.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change session status from %q to %q", e.From, e.To)
}
