package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"terapiku/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker returns a fixed slot list for every date.
type stubChecker struct {
	mu    sync.Mutex
	slots []string
	calls []string // dates requested, in order
}

func (c *stubChecker) GetAvailableSlots(_ context.Context, _, date string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, date)
	return c.slots, nil
}

func (c *stubChecker) HasConflict(_ context.Context, _, _, _ string) (bool, error) {
	return false, nil
}

func TestNewAppointmentSelectionPrePopulates(t *testing.T) {
	existing := []models.AppointmentSlot{
		{Date: "2026-09-03", Time: "10:00"},
		{Date: "2026-09-04", Time: "11:00"},
	}

	s := NewAppointmentSelection(nil, "ther-1", PackageVisits, existing, 1)

	assert.Equal(t, 1, s.ActiveTab())
	assert.Equal(t, existing[0], s.Slot(0))
	assert.Equal(t, existing[1], s.Slot(1))
	assert.Equal(t, models.AppointmentSlot{}, s.Slot(2))
}

func TestNewAppointmentSelectionClampsActiveTab(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 1, nil, 7)
	assert.Equal(t, 0, s.ActiveTab())
}

func TestSelectDateClearsTimeAndAvailability(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 1, nil, 0)
	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-03"))
	s.ApplyAvailability(0, "2026-09-03", []string{"10:00"})
	require.NoError(t, s.SelectTime(0, "10:00"))

	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-04"))

	slot := s.Slot(0)
	assert.Equal(t, "2026-09-04", slot.Date)
	assert.Empty(t, slot.Time)
	assert.Nil(t, s.Available(0))
}

func TestSelectDateTriggersAvailabilityRefresh(t *testing.T) {
	checker := &stubChecker{slots: []string{"09:00", "09:30"}}
	s := NewAppointmentSelection(checker, "ther-1", 1, nil, 0)

	done := make(chan struct{}, 4)
	s.Subscribe(func() { done <- struct{}{} })

	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-03"))

	// First notification is the date change, second the delivered result.
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for availability refresh")
		}
	}
	assert.Equal(t, []string{"09:00", "09:30"}, s.Available(0))
}

func TestApplyAvailabilityDiscardsStaleResponse(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 1, nil, 0)
	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-03"))
	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-04"))

	// The response for the first date arrives after the second change.
	s.ApplyAvailability(0, "2026-09-03", []string{"09:00"})
	assert.Nil(t, s.Available(0))

	s.ApplyAvailability(0, "2026-09-04", []string{"11:00"})
	assert.Equal(t, []string{"11:00"}, s.Available(0))
}

func TestApplyAvailabilityOutOfOrderLatestWins(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 2, nil, 0)
	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-05"))

	s.ApplyAvailability(0, "2026-09-05", []string{"10:00"})
	s.ApplyAvailability(0, "2026-09-03", []string{"09:00"}) // late arrival for an old date

	assert.Equal(t, []string{"10:00"}, s.Available(0))
}

func TestSelectTimeRequiresDate(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 1, nil, 0)

	err := s.SelectTime(0, "10:00")

	require.Error(t, err)
	assert.Empty(t, s.Slot(0).Time)
}

func TestSelectTimeAndSlots(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 2, nil, 0)
	require.NoError(t, s.SelectDate(context.Background(), 0, "2026-09-03"))
	require.NoError(t, s.SelectTime(0, "10:00"))
	require.NoError(t, s.SelectDate(context.Background(), 1, "2026-09-10"))

	// Visit 1 has no time yet, so only visit 0 is complete.
	slots := s.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, models.AppointmentSlot{Date: "2026-09-03", Time: "10:00"}, slots[0])

	require.NoError(t, s.SelectTime(1, "14:00"))
	assert.Len(t, s.Slots(), 2)
}

func TestSwitchTabBounds(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", PackageVisits, nil, 0)

	require.NoError(t, s.SwitchTab(3))
	assert.Equal(t, 3, s.ActiveTab())

	require.Error(t, s.SwitchTab(4))
	require.Error(t, s.SwitchTab(-1))
	assert.Equal(t, 3, s.ActiveTab())
}

func TestSelectDateIndexOutOfRange(t *testing.T) {
	s := NewAppointmentSelection(nil, "ther-1", 1, nil, 0)

	assert.Error(t, s.SelectDate(context.Background(), 1, "2026-09-03"))
	assert.Error(t, s.SelectDate(context.Background(), -1, "2026-09-03"))
}
