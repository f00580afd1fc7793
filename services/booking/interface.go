package booking

import (
	"context"

	"terapiku/models"
)

// CheckoutService manages the stateful checkout flow of one receptionist
// dialog: a cart built up across requests and finally committed into
// therapy sessions.
type CheckoutService interface {
	Start(ctx context.Context, patient, therapist models.PersonRef) (*models.CheckoutSession, error)
	Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	AddItem(ctx context.Context, sessionID, serviceID string, isPackage bool, slots []models.AppointmentSlot) (*models.CheckoutSession, error)
	UpdateQuantity(ctx context.Context, sessionID, lineKey string, quantity int) (*models.CheckoutSession, error)
	RemoveItem(ctx context.Context, sessionID, lineKey string) (*models.CheckoutSession, error)
	Clear(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	Confirm(ctx context.Context, sessionID, transactionID string) ([]models.TherapySession, error)
	Cancel(ctx context.Context, sessionID string) error
}
