package appointment

import (
	"context"

	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

// ListAppointments atende as duas listagens (a do próprio usuário e a
// administrativa): o escopo decide o que é carregado, a query decide o
// que sobrevive ao filtro em memória.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	scope domain.Scope,
	query domain.Query,
) ([]models.Appointment, error) {

	appointments, err := uc.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	// a ordenação não depende da ordem em que o repositório devolve
	domain.SortByDateTime(appointments)

	return query.Apply(appointments), nil
}
