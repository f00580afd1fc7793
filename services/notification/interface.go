package notification

import (
	"context"

	"terapiku/models"
	"terapiku/utils"

	"go.uber.org/zap"
)

// NotificationService delivers upcoming-visit reminders. Push/SMS delivery
// belongs to an external collaborator; the default implementation logs.
type NotificationService interface {
	SendSessionReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService writes reminders to the application log.
type LogNotificationService struct{}

func (s *LogNotificationService) SendSessionReminder(_ context.Context, p models.ReminderPayload) error {
	utils.GetLogger().Info("session reminder",
		zap.String("sessionId", p.SessionID),
		zap.String("patient", p.PatientName),
		zap.String("therapist", p.TherapistName),
		zap.String("service", p.ServiceName),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
