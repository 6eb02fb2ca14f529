package appointment

import "github.com/goldinkstudio/tattoo-booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition valida uma transição arbitrária contra o ciclo de vida:
// pending→confirmed, confirmed→completed, {pending,confirmed}→cancelled.
func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	switch to {
	case StatusConfirmed:
		return CanConfirm(from)
	case StatusCompleted:
		return CanComplete(from)
	case StatusCancelled:
		return CanCancel(from)
	}

	// pending nunca é um destino válido
	return httperr.ErrBusiness("invalid_state")
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusPending
}
