package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	catalogRepo "terapiku/database/repository/catalog"
	"terapiku/models"
	"terapiku/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// DefaultCheckoutService stores checkout sessions as JSON blobs in Redis
// under a TTL, reloading and rewriting the blob around every mutation.
type DefaultCheckoutService struct {
	Cache   *redis.Client
	Catalog catalogRepo.CatalogRepository
	Engine  *DefaultSchedulingEngine
	TTL     time.Duration
}

func (s *DefaultCheckoutService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return utils.DefaultCheckoutTTL
}

// Start creates a new checkout session for a patient/therapist pair and
// stores it under a fresh session ID.
func (s *DefaultCheckoutService) Start(ctx context.Context, patient, therapist models.PersonRef) (*models.CheckoutSession, error) {
	session := &models.CheckoutSession{
		SessionID:     uuid.New().String(),
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		TherapistID:   therapist.ID,
		TherapistName: therapist.Name,
		CreatedAt:     time.Now(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get retrieves a checkout session by ID.
func (s *DefaultCheckoutService) Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.load(ctx, sessionID)
}

// AddItem fetches the service from the catalog, prices it and adds it to
// the session's cart.
func (s *DefaultCheckoutService) AddItem(ctx context.Context, sessionID, serviceID string, isPackage bool, slots []models.AppointmentSlot) (*models.CheckoutSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	svc, err := s.Catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}

	AddItem(&session.Cart, *svc, isPackage, slots, time.Now())
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateQuantity replaces a line's quantity (zero or less removes it).
func (s *DefaultCheckoutService) UpdateQuantity(ctx context.Context, sessionID, lineKey string, quantity int) (*models.CheckoutSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	UpdateQuantity(&session.Cart, lineKey, quantity)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RemoveItem drops a line from the cart.
func (s *DefaultCheckoutService) RemoveItem(ctx context.Context, sessionID, lineKey string) (*models.CheckoutSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	RemoveItem(&session.Cart, lineKey)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Clear empties the session's cart.
func (s *DefaultCheckoutService) Clear(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ClearCart(&session.Cart)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm commits every scheduled cart line into therapy sessions and
// destroys the checkout session on success. On a slot conflict the checkout
// session is left intact so the receptionist can rebook the colliding
// visit; sessions committed before the conflict remain persisted.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, sessionID, transactionID string) ([]models.TherapySession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var committed []models.TherapySession
	for _, item := range session.Cart.Items {
		if len(item.Appointments) == 0 {
			continue // retail products are handled by the POS transaction
		}
		sessions, err := s.Engine.CommitCartItem(ctx, session.Patient(), session.Therapist(), item, transactionID)
		committed = append(committed, sessions...)
		if err != nil {
			return committed, err
		}
	}

	if err := s.Cache.Del(ctx, utils.CheckoutCachePrefix+sessionID).Err(); err != nil {
		return committed, fmt.Errorf("failed to clear checkout session: %w", err)
	}
	return committed, nil
}

// Cancel discards a checkout session without committing anything.
func (s *DefaultCheckoutService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, utils.CheckoutCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel checkout session: %w", err)
	}
	return nil
}

func (s *DefaultCheckoutService) load(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	data, err := s.Cache.Get(ctx, utils.CheckoutCachePrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("checkout session not found or expired: %w", err)
	}
	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &session, nil
}

func (s *DefaultCheckoutService) save(ctx context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.CheckoutCachePrefix+session.SessionID, data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}
