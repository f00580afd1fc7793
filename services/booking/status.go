package booking

import (
	"context"
	"fmt"
	"time"

	sessionRepo "terapiku/database/repository/session"
	"terapiku/models"
)

// statusTransitions lists the legal next statuses per current status.
// Completed and cancelled are terminal.
var statusTransitions = map[string][]string{
	models.StatusScheduled: {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

// CanTransition reports whether a status change is legal. Unknown statuses
// on either side are illegal.
func CanTransition(from, to string) bool {
	next, ok := statusTransitions[from]
	if !ok {
		return false
	}
	if _, known := statusTransitions[to]; !known {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// StatusService governs the lifecycle of persisted therapy sessions.
type StatusService interface {
	UpdateSessionStatus(ctx context.Context, sessionID, newStatus string, actor models.User) (*models.TherapySession, error)
}

// DefaultStatusService is the production implementation.
type DefaultStatusService struct {
	Repo sessionRepo.SessionRepository
}

// UpdateSessionStatus applies a status transition. Illegal transitions are
// rejected before any write; successful ones always stamp statusDiupdate
// with the acting user. Write failures propagate unretried: the caller
// decides whether to retry.
func (s *DefaultStatusService) UpdateSessionStatus(ctx context.Context, sessionID, newStatus string, actor models.User) (*models.TherapySession, error) {
	session, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	if !CanTransition(session.Status, newStatus) {
		return nil, &InvalidTransitionError{From: session.Status, To: newStatus}
	}

	audit := models.StatusAudit{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Timestamp: time.Now(),
	}
	if err := s.Repo.UpdateStatus(ctx, sessionID, newStatus, audit); err != nil {
		return nil, fmt.Errorf("failed to update status of session %s: %w", sessionID, err)
	}

	session.Status = newStatus
	session.StatusDiupdate = &audit
	return session, nil
}
