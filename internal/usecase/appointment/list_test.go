package appointment

import (
	"context"
	"testing"

	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

func seededRepo() *fakeRepo {
	// propositalmente fora de ordem
	return &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, UserID: 7, AppointmentDate: "2026-09-01", AppointmentTime: "10:00", Status: "pending", Email: "maria@example.com"},
			{ID: 2, UserID: 8, AppointmentDate: "2026-09-03", AppointmentTime: "14:30", Status: "confirmed", Email: "joao@example.com"},
			{ID: 3, UserID: 7, AppointmentDate: "2026-09-03", AppointmentTime: "09:00", Status: "cancelled", Email: "maria@example.com"},
		},
	}
}

func TestListOwnerScope(t *testing.T) {
	uc := NewListAppointments(seededRepo())

	got, err := uc.Execute(context.Background(), domain.OwnerScope(7), domain.Query{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// só os do usuário 7, ordenados por data/hora decrescentes
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Errorf("ids = [%d %d], want [3 1]", got[0].ID, got[1].ID)
	}
}

func TestListAllScopeSortsAndFilters(t *testing.T) {
	uc := NewListAppointments(seededRepo())

	got, err := uc.Execute(context.Background(), domain.AllScope(), domain.Query{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 1 {
		t.Errorf("ids = [%d %d %d], want [2 3 1]", got[0].ID, got[1].ID, got[2].ID)
	}

	// busca que casa só com o email de um dos três
	got, err = uc.Execute(context.Background(), domain.AllScope(), domain.Query{Search: "joao@"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("search result = %v, want only id 2", got)
	}

	// filtro de status
	got, err = uc.Execute(context.Background(), domain.AllScope(), domain.Query{Status: "pending"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("status filter result = %v, want only id 1", got)
	}
}
