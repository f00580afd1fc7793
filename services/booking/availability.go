package booking

import (
	"context"
	"fmt"
	"time"

	sessionRepo "terapiku/database/repository/session"
	"terapiku/models"
)

// AvailabilityChecker computes bookable time slots for a therapist and
// probes for exact-slot conflicts.
type AvailabilityChecker interface {
	// GetAvailableSlots returns the bookable "HH:MM" times for a therapist
	// on a date: the clinic's working-hours grid minus occupied slots.
	GetAvailableSlots(ctx context.Context, therapistID, date string) ([]string, error)
	// HasConflict reports whether an active (non-cancelled) session already
	// exists for the exact therapist+date+time triple.
	HasConflict(ctx context.Context, therapistID, date, timeOfDay string) (bool, error)
}

// WorkingHours describes the clinic's bookable grid: slots every
// IntervalMinutes from Open up to (but excluding) Close.
type WorkingHours struct {
	Open            string // "HH:MM"
	Close           string // "HH:MM", exclusive
	IntervalMinutes int
}

// Grid expands the working hours into the ordered list of slot times.
func (wh WorkingHours) Grid() []string {
	open, err := time.Parse(models.TimeLayout, wh.Open)
	if err != nil {
		return nil
	}
	close, err := time.Parse(models.TimeLayout, wh.Close)
	if err != nil {
		return nil
	}
	interval := wh.IntervalMinutes
	if interval <= 0 {
		interval = 30
	}

	var grid []string
	for t := open; t.Before(close); t = t.Add(time.Duration(interval) * time.Minute) {
		grid = append(grid, t.Format(models.TimeLayout))
	}
	return grid
}

// DefaultAvailabilityChecker checks slots against the sessions collection.
//
// Matching is exact-slot only: a session occupies exactly its own time and
// does not block neighbouring slots even when its duration overlaps them.
type DefaultAvailabilityChecker struct {
	Repo  sessionRepo.SessionRepository
	Hours WorkingHours
}

// GetAvailableSlots computes the free slots for a therapist on a date.
func (c *DefaultAvailabilityChecker) GetAvailableSlots(ctx context.Context, therapistID, date string) ([]string, error) {
	booked, err := c.Repo.ActiveTimes(ctx, therapistID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupied slots: %w", err)
	}

	occupied := make(map[string]bool, len(booked))
	for _, t := range booked {
		occupied[t] = true
	}

	var available []string
	for _, t := range c.Hours.Grid() {
		if !occupied[t] {
			available = append(available, t)
		}
	}
	return available, nil
}

// HasConflict probes for an active session at the exact slot.
func (c *DefaultAvailabilityChecker) HasConflict(ctx context.Context, therapistID, date, timeOfDay string) (bool, error) {
	conflict, err := c.Repo.HasActiveSession(ctx, therapistID, date, timeOfDay)
	if err != nil {
		return false, fmt.Errorf("failed to check slot conflict: %w", err)
	}
	return conflict, nil
}
