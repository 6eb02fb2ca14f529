package appointment

import (
	"context"

	"github.com/goldinkstudio/tattoo-booking-api/internal/audit"
	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httperr"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

// auditDispatcher é o que os use cases precisam do dispatcher de auditoria.
type auditDispatcher interface {
	Dispatch(ev audit.Event)
}

type UpdateStatus struct {
	repo  domain.Repository
	audit auditDispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit auditDispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// a transição é validada ANTES de qualquer escrita
	if err := domain.CanTransition(domain.Status(ap.Status), newStatus); err != nil {
		return nil, err
	}

	ap.Status = string(newStatus)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_status_" + string(newStatus),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
