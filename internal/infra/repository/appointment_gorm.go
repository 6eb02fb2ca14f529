package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	scope domain.Scope,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if scope.UserID != nil {
		q = q.Where("user_id = ?", *scope.UserID)
	}

	var appointments []models.Appointment
	if err := q.
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Update / Delete
// --------------------------------------------------

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}
