package appointment

import (
	"context"

	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

// Scope delimita quais agendamentos uma listagem enxerga.
// UserID nil significa "todos" (visão administrativa).
type Scope struct {
	UserID *uint
}

func OwnerScope(userID uint) Scope {
	return Scope{UserID: &userID}
}

func AllScope() Scope {
	return Scope{}
}

type Repository interface {
	// -------- Appointment (create) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	List(
		ctx context.Context,
		scope Scope,
	) ([]models.Appointment, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointment (state change / delete) --------
	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
