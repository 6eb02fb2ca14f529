package appointment

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/goldinkstudio/tattoo-booking-api/internal/audit"
	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

// ----- fake repository -----

type fakeRepo struct {
	mu sync.Mutex

	appointments []models.Appointment
	created      []*models.Appointment
	updated      []*models.Appointment
	deleted      []uint

	listErr   error
	createErr error
}

func (r *fakeRepo) Create(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = uint(len(r.created) + 1)
	r.created = append(r.created, ap)
	return nil
}

func (r *fakeRepo) List(_ context.Context, scope domain.Scope) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if scope.UserID == nil {
		return append([]models.Appointment(nil), r.appointments...), nil
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == *scope.UserID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updated = append(r.updated, ap)
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	return nil
}

// ----- fake object store -----

// failMarker em Upload.Data derruba aquele upload específico.
const failMarker = "FAIL"

type fakeStore struct {
	mu      sync.Mutex
	uploads []string
}

func (s *fakeStore) Upload(_ context.Context, key string, body []byte, _ string) error {
	if string(body) == failMarker {
		return errors.New("upload rejected")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = append(s.uploads, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func (s *fakeStore) originalUploads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, key := range s.uploads {
		if !strings.HasSuffix(key, ".thumb.webp") {
			out = append(out, key)
		}
	}
	return out
}

// ----- fake audit -----

type fakeAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}
