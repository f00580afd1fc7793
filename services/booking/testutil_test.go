package booking

import (
	"context"
	"fmt"
	"sync"

	"terapiku/models"
)

// fakeSessionRepo is an in-memory stand-in for the Mongo session repository.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []models.TherapySession
	failWith error
}

func (f *fakeSessionRepo) seed(s models.TherapySession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, s)
}

func (f *fakeSessionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

func (f *fakeSessionRepo) Insert(_ context.Context, session *models.TherapySession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*models.TherapySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			s := f.sessions[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("therapy session with id %s not found", id)
}

func (f *fakeSessionRepo) ActiveTimes(_ context.Context, therapistID, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var times []string
	for _, s := range f.sessions {
		if s.TherapistID == therapistID && s.Date == date && s.Status != models.StatusCancelled {
			times = append(times, s.Time)
		}
	}
	return times, nil
}

func (f *fakeSessionRepo) HasActiveSession(_ context.Context, therapistID, date, timeOfDay string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, s := range f.sessions {
		if s.TherapistID == therapistID && s.Date == date && s.Time == timeOfDay && s.Status != models.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, id, status string, audit models.StatusAudit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].Status = status
			a := audit
			f.sessions[i].StatusDiupdate = &a
			return nil
		}
	}
	return fmt.Errorf("therapy session with id %s not found", id)
}

func (f *fakeSessionRepo) ListByDate(_ context.Context, date string) ([]models.TherapySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.TherapySession
	for _, s := range f.sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeCatalog serves services from a fixed map.
type fakeCatalog struct {
	services map[string]models.Service
}

func (f *fakeCatalog) GetServiceByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return &svc, nil
}

func (f *fakeCatalog) ListServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

func physioService() models.Service {
	return models.Service{
		ID:       "svc-1",
		Name:     "Terapi Fisik",
		Price:    100000,
		Duration: 60,
		Type:     models.ServiceTypeService,
	}
}

func kneeSupportProduct() models.Service {
	return models.Service{
		ID:    "prd-1",
		Name:  "Knee Support",
		Price: 150000,
		Type:  models.ServiceTypeProduct,
	}
}
