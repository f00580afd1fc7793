package models

import "time"

// Therapy session statuses. Completed and cancelled are terminal.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// PersonRef is a denormalized reference to a patient or therapist.
type PersonRef struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// StatusAudit records who performed the last status transition and when.
type StatusAudit struct {
	ActorID   string    `bson:"actorId" json:"actorId"`
	ActorName string    `bson:"actorName" json:"actorName"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// TherapySession is a persisted visit record. Sessions are never deleted by
// the booking core; cancellation is a status value, not a row removal.
type TherapySession struct {
	ID             string       `bson:"id" json:"id"`
	PatientID      string       `bson:"patientId" json:"patientId"`
	PatientName    string       `bson:"patientName" json:"patientName"`
	TherapistID    string       `bson:"therapistId" json:"therapistId"`
	TherapistName  string       `bson:"therapistName" json:"therapistName"`
	ServiceID      string       `bson:"serviceId" json:"serviceId"`
	ServiceName    string       `bson:"serviceName" json:"serviceName"`
	Date           string       `bson:"date" json:"date"` // "2006-01-02"
	Time           string       `bson:"time" json:"time"` // "HH:MM"
	Status         string       `bson:"status" json:"status"`
	IsPackage      bool         `bson:"isPackage,omitempty" json:"isPackage,omitempty"`
	PackageIndex   int          `bson:"packageIndex,omitempty" json:"packageIndex,omitempty"` // 1-based visit index within a package
	TransactionID  string       `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	StatusDiupdate *StatusAudit `bson:"statusDiupdate,omitempty" json:"statusDiupdate,omitempty"`
}
