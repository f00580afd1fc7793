package booking

import (
	"context"
	"fmt"
	"time"

	sessionRepo "terapiku/database/repository/session"
	"terapiku/models"
	"terapiku/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler queues an upcoming-visit reminder for a committed
// session. Scheduling failures never fail the booking.
type ReminderScheduler interface {
	Schedule(ctx context.Context, session models.TherapySession) error
}

// DefaultSchedulingEngine turns confirmed slots into durable therapy
// sessions. The conflict re-check and the insert are not atomic against the
// store; two concurrent commits can both pass the check before either
// writes. Clinic volume is low, so the race is accepted and recovered by
// manual rebooking.
type DefaultSchedulingEngine struct {
	Repo      sessionRepo.SessionRepository
	Checker   AvailabilityChecker
	Reminders ReminderScheduler
}

// CommitSlot re-checks the exact therapist+date+time triple immediately
// before writing. On conflict it performs no write and returns a
// ConflictError; otherwise it persists the session as "scheduled".
func (se *DefaultSchedulingEngine) CommitSlot(
	ctx context.Context,
	patient, therapist models.PersonRef,
	svc models.Service,
	slot models.AppointmentSlot,
	isPackage bool,
	packageIndex int,
	transactionID string,
) (*models.TherapySession, error) {
	conflict, err := se.Checker.HasConflict(ctx, therapist.ID, slot.Date, slot.Time)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if conflict {
		return nil, &ConflictError{
			TherapistName: therapist.Name,
			Date:          slot.Date,
			Time:          slot.Time,
		}
	}

	session := &models.TherapySession{
		ID:            uuid.New().String(),
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		TherapistID:   therapist.ID,
		TherapistName: therapist.Name,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Date:          slot.Date,
		Time:          slot.Time,
		Status:        models.StatusScheduled,
		IsPackage:     isPackage,
		PackageIndex:  packageIndex,
		TransactionID: transactionID,
		CreatedAt:     time.Now(),
	}

	if err := se.Repo.Insert(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist therapy session: %w", err)
	}

	if se.Reminders != nil {
		if err := se.Reminders.Schedule(ctx, *session); err != nil {
			utils.GetLogger().Warn("failed to schedule session reminder",
				zap.String("sessionId", session.ID), zap.Error(err))
		}
	}

	return session, nil
}

// CommitCartItem expands one scheduled cart line into its therapy sessions:
// one per slot, with 1-based package indices for package lines. Committed
// sessions are returned even when a later slot conflicts, so the caller can
// report exactly which visit needs rebooking.
func (se *DefaultSchedulingEngine) CommitCartItem(
	ctx context.Context,
	patient, therapist models.PersonRef,
	item models.CartItem,
	transactionID string,
) ([]models.TherapySession, error) {
	svc := models.Service{
		ID:       item.ServiceID,
		Name:     item.ServiceName,
		Price:    item.Price,
		Duration: item.Duration,
		Type:     item.Type,
	}

	var committed []models.TherapySession
	for idx, slot := range item.Appointments {
		packageIndex := 0
		if item.IsPackage {
			packageIndex = idx + 1
		}
		session, err := se.CommitSlot(ctx, patient, therapist, svc, slot, item.IsPackage, packageIndex, transactionID)
		if err != nil {
			return committed, err
		}
		committed = append(committed, *session)
	}
	return committed, nil
}
