package tasks

import (
	"context"
	"encoding/json"
	"time"

	"terapiku/models"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "reminder:session"

// NewSessionReminderTask builds a reminder task scheduled for fireAt.
func NewSessionReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues a reminder ahead of each committed visit.
type Scheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// Schedule queues the reminder Lead before the session's start. Sessions
// starting within the lead window (or in the past) are skipped.
func (s *Scheduler) Schedule(_ context.Context, session models.TherapySession) error {
	start, err := time.ParseInLocation(models.DateLayout+" "+models.TimeLayout, session.Date+" "+session.Time, time.Local)
	if err != nil {
		return err
	}
	fireAt := start.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		SessionID:     session.ID,
		PatientID:     session.PatientID,
		PatientName:   session.PatientName,
		TherapistName: session.TherapistName,
		ServiceName:   session.ServiceName,
		Date:          session.Date,
		Time:          session.Time,
	}
	task, opts, err := NewSessionReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
