package models

import "time"

// CheckoutSession holds the interactive state between opening a booking
// dialog and confirming the cart. It lives in Redis under a TTL and is
// owned by exactly one receptionist session.
type CheckoutSession struct {
	SessionID     string    `json:"sessionId"`
	PatientID     string    `json:"patientId"`
	PatientName   string    `json:"patientName"`
	TherapistID   string    `json:"therapistId"`
	TherapistName string    `json:"therapistName"`
	Cart          Cart      `json:"cart"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Patient returns the session's patient as a denormalized reference.
func (cs *CheckoutSession) Patient() PersonRef {
	return PersonRef{ID: cs.PatientID, Name: cs.PatientName}
}

// Therapist returns the session's therapist as a denormalized reference.
func (cs *CheckoutSession) Therapist() PersonRef {
	return PersonRef{ID: cs.TherapistID, Name: cs.TherapistName}
}
