package models

// DateLayout is the canonical calendar-date form used across collections.
const DateLayout = "2006-01-02"

// TimeLayout is the canonical time-of-day form ("HH:MM", 24-hour).
const TimeLayout = "15:04"

// AppointmentSlot is one visit: a calendar date and a time of day.
// Slots are ephemeral until committed as therapy sessions.
type AppointmentSlot struct {
	Date string `bson:"date" json:"date"` // "2006-01-02"
	Time string `bson:"time" json:"time"` // "HH:MM"
}

// Complete reports whether both halves of the slot have been chosen.
func (s AppointmentSlot) Complete() bool {
	return s.Date != "" && s.Time != ""
}
