package appointment

import (
	"context"

	"github.com/goldinkstudio/tattoo-booking-api/internal/audit"
	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit auditDispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit auditDispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"full_name":        ap.FullName,
			"appointment_date": ap.AppointmentDate,
			"status":           ap.Status,
		},
	})

	return nil
}
