package models

// Roles recognized by the identity collaborator.
const (
	RoleAdmin     = "admin"
	RoleTherapist = "therapist"
	RolePatient   = "patient"
	RoleStaff     = "staff"
)

// User is the authenticated identity acting on the system. The booking core
// uses it only to stamp audit fields and to gate status transitions.
type User struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Role string `bson:"role" json:"role"`
}
