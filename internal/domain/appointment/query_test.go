package appointment

import (
	"testing"

	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

func sample() []models.Appointment {
	return []models.Appointment{
		{
			ID:                1,
			FullName:          "Maria Silva",
			Email:             "maria@example.com",
			Phone:             "11988887777",
			TattooDescription: "Dragão no braço",
			AppointmentDate:   "2026-09-01",
			AppointmentTime:   "10:00",
			Status:            "pending",
		},
		{
			ID:                2,
			FullName:          "João Souza",
			Email:             "joao@example.com",
			Phone:             "21977776666",
			TattooDescription: "Rosa no ombro",
			AppointmentDate:   "2026-09-03",
			AppointmentTime:   "14:30",
			Status:            "confirmed",
		},
		{
			ID:                3,
			FullName:          "Ana Lima",
			Email:             "ana@example.com",
			Phone:             "11966665555",
			TattooDescription: "Fênix nas costas",
			AppointmentDate:   "2026-09-03",
			AppointmentTime:   "09:00",
			Status:            "pending",
		},
	}
}

func ids(list []models.Appointment) []uint {
	out := make([]uint, len(list))
	for i, ap := range list {
		out[i] = ap.ID
	}
	return out
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByDateTime(t *testing.T) {
	// data decrescente, empate resolvido por hora decrescente,
	// independente da ordem de chegada
	list := sample()
	SortByDateTime(list)

	want := []uint{2, 3, 1}
	if got := ids(list); !equalIDs(got, want) {
		t.Errorf("sorted ids = %v, want %v", got, want)
	}

	// mesma entrada em outra ordem
	reversed := []models.Appointment{list[2], list[0], list[1]}
	SortByDateTime(reversed)
	if got := ids(reversed); !equalIDs(got, want) {
		t.Errorf("sorted (reversed input) ids = %v, want %v", got, want)
	}
}

func TestQueryStatusFilter(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   []uint
	}{
		{"all keeps everything", "all", []uint{1, 2, 3}},
		{"empty keeps everything", "", []uint{1, 2, 3}},
		{"pending subset", "pending", []uint{1, 3}},
		{"confirmed subset", "confirmed", []uint{2}},
		{"no match", "cancelled", []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query{Status: tt.status}.Apply(sample())
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestQuerySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []uint
	}{
		{"matches only one email", "joao@", []uint{2}},
		{"case-insensitive name", "MARIA", []uint{1}},
		{"description match", "fênix", []uint{3}},
		{"phone substring", "2197", []uint{2}},
		{"phone is literal, no normalization", "(21)", []uint{}},
		{"no match", "nonexistent", []uint{}},
		{"empty keeps everything", "", []uint{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query{Search: tt.search}.Apply(sample())
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestQueryFiltersCompose(t *testing.T) {
	got := Query{Status: "pending", Search: "ana@"}.Apply(sample())
	if !equalIDs(ids(got), []uint{3}) {
		t.Errorf("ids = %v, want [3]", ids(got))
	}

	// busca encontra, mas o status exclui
	got = Query{Status: "cancelled", Search: "ana@"}.Apply(sample())
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}
