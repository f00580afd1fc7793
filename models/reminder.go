package models

// ReminderPayload is the task body queued when a session is committed and
// delivered to the notification service shortly before the visit.
type ReminderPayload struct {
	SessionID     string `json:"sessionId"`
	PatientID     string `json:"patientId"`
	PatientName   string `json:"patientName"`
	TherapistName string `json:"therapistName"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
