package appointment

import (
	"sort"
	"strings"

	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

// Query é o filtro em memória aplicado sobre uma lista já carregada.
// As duas listagens (a do próprio usuário e a administrativa) compõem
// os mesmos filtros; a diferença entre elas é só o escopo da carga.
type Query struct {
	// Status: "all" (ou vazio) mantém o conjunto intacto.
	Status string

	// Search: substring sem distinção de maiúsculas sobre nome,
	// email e descrição; sobre o telefone a busca é literal.
	Search string
}

// Apply filtra a lista sem re-consultar o banco.
func (q Query) Apply(list []models.Appointment) []models.Appointment {
	filtered := list

	if q.Status != "" && q.Status != "all" {
		out := make([]models.Appointment, 0, len(filtered))
		for _, ap := range filtered {
			if ap.Status == q.Status {
				out = append(out, ap)
			}
		}
		filtered = out
	}

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		out := make([]models.Appointment, 0, len(filtered))
		for _, ap := range filtered {
			if matchesSearch(&ap, q.Search, term) {
				out = append(out, ap)
			}
		}
		filtered = out
	}

	return filtered
}

func matchesSearch(ap *models.Appointment, raw, lowered string) bool {
	return strings.Contains(strings.ToLower(ap.FullName), lowered) ||
		strings.Contains(strings.ToLower(ap.Email), lowered) ||
		strings.Contains(ap.Phone, raw) ||
		strings.Contains(strings.ToLower(ap.TattooDescription), lowered)
}

// SortByDateTime ordena por data decrescente e, em empate, por hora
// decrescente. Datas/horas em formato ISO comparam lexicograficamente.
func SortByDateTime(list []models.Appointment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].AppointmentDate != list[j].AppointmentDate {
			return list[i].AppointmentDate > list[j].AppointmentDate
		}
		return list[i].AppointmentTime > list[j].AppointmentTime
	})
}
