package sessionRepo

import (
	"context"

	"terapiku/models"
)

// SessionRepository abstracts the therapy_sessions collection. All methods
// are network round trips against the document store.
type SessionRepository interface {
	// Insert persists a new session record.
	Insert(ctx context.Context, session *models.TherapySession) error
	// GetByID fetches a single session by its id.
	GetByID(ctx context.Context, id string) (*models.TherapySession, error)
	// ActiveTimes returns the times ("HH:MM") of all non-cancelled sessions
	// for a therapist on a date.
	ActiveTimes(ctx context.Context, therapistID, date string) ([]string, error)
	// HasActiveSession reports whether a non-cancelled session exists for
	// the exact therapist+date+time triple.
	HasActiveSession(ctx context.Context, therapistID, date, timeOfDay string) (bool, error)
	// UpdateStatus sets a session's status together with its audit stamp.
	UpdateStatus(ctx context.Context, id, status string, audit models.StatusAudit) error
	// ListByDate returns all sessions on a date, for the day schedule view.
	ListByDate(ctx context.Context, date string) ([]models.TherapySession, error)
}
