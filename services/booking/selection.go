package booking

import (
	"context"
	"fmt"
	"sync"

	"terapiku/models"
	"terapiku/utils"

	"go.uber.org/zap"
)

// AppointmentSelection tracks the date/time chosen for each visit of one
// booking dialog: one slot for a single visit, four for a package. It is
// owned by a single interactive session; the mutex only serializes the
// dialog's own calls against availability responses arriving on goroutines.
type AppointmentSelection struct {
	mu          sync.Mutex
	checker     AvailabilityChecker
	therapistID string

	activeTab int
	dates     []string
	times     []string
	available [][]string

	onChange func()
}

// NewAppointmentSelection opens a selection over `visits` slots,
// pre-populated from any already-chosen slots (edit mode). activeTab is
// clamped into range.
func NewAppointmentSelection(checker AvailabilityChecker, therapistID string, visits int, existing []models.AppointmentSlot, activeTab int) *AppointmentSelection {
	if visits < 1 {
		visits = 1
	}
	s := &AppointmentSelection{
		checker:     checker,
		therapistID: therapistID,
		dates:       make([]string, visits),
		times:       make([]string, visits),
		available:   make([][]string, visits),
	}
	for i, slot := range existing {
		if i >= visits {
			break
		}
		s.dates[i] = slot.Date
		s.times[i] = slot.Time
	}
	if activeTab >= 0 && activeTab < visits {
		s.activeTab = activeTab
	}
	return s
}

// Subscribe registers a callback invoked after every state change. The UI
// layer renders from it instead of owning the state.
func (s *AppointmentSelection) Subscribe(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SelectDate sets the date for slot i, clears its previously chosen time (a
// new date invalidates it) and triggers an asynchronous availability
// refresh. The refresh response is dropped if the slot's date has changed
// again by the time it arrives: the latest date always wins.
func (s *AppointmentSelection) SelectDate(ctx context.Context, i int, date string) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.dates) {
		s.mu.Unlock()
		return fmt.Errorf("slot index %d out of range", i)
	}
	s.dates[i] = date
	s.times[i] = ""
	s.available[i] = nil
	s.notifyLocked()
	s.mu.Unlock()

	if s.checker == nil || date == "" {
		return nil
	}
	go func() {
		slots, err := s.checker.GetAvailableSlots(ctx, s.therapistID, date)
		if err != nil {
			// Reported but never corrupts the selection state.
			utils.GetLogger().Warn("availability refresh failed",
				zap.String("therapistId", s.therapistID),
				zap.String("date", date),
				zap.Error(err))
			return
		}
		s.ApplyAvailability(i, date, slots)
	}()
	return nil
}

// ApplyAvailability delivers an availability result for (slot i, date).
// Results for a date the slot no longer holds are stale and are silently
// discarded.
func (s *AppointmentSelection) ApplyAvailability(i int, date string, slots []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.dates) {
		return
	}
	if s.dates[i] != date {
		return // stale response
	}
	s.available[i] = slots
	s.notifyLocked()
}

// SelectTime sets the time for slot i. A date must have been chosen first;
// a time is never held against an empty date.
func (s *AppointmentSelection) SelectTime(i int, timeOfDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.times) {
		return fmt.Errorf("slot index %d out of range", i)
	}
	if s.dates[i] == "" {
		return fmt.Errorf("select a date for visit %d before choosing a time", i+1)
	}
	s.times[i] = timeOfDay
	s.notifyLocked()
	return nil
}

// SwitchTab changes which visit's controls are visible. Out-of-range
// indices are rejected with no side effects.
func (s *AppointmentSelection) SwitchTab(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.dates) {
		return fmt.Errorf("tab index %d out of range", i)
	}
	s.activeTab = i
	s.notifyLocked()
	return nil
}

// ActiveTab returns the visit index currently being edited.
func (s *AppointmentSelection) ActiveTab() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// Slot returns the date and time currently held for visit i.
func (s *AppointmentSelection) Slot(i int) models.AppointmentSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.dates) {
		return models.AppointmentSlot{}
	}
	return models.AppointmentSlot{Date: s.dates[i], Time: s.times[i]}
}

// Available returns the last availability result delivered for visit i.
func (s *AppointmentSelection) Available(i int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.available) {
		return nil
	}
	return s.available[i]
}

// Slots returns the fully chosen visit slots, in visit order.
func (s *AppointmentSelection) Slots() []models.AppointmentSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var slots []models.AppointmentSlot
	for i := range s.dates {
		slot := models.AppointmentSlot{Date: s.dates[i], Time: s.times[i]}
		if slot.Complete() {
			slots = append(slots, slot)
		}
	}
	return slots
}

func (s *AppointmentSelection) notifyLocked() {
	if s.onChange != nil {
		s.onChange()
	}
}
