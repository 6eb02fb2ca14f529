package timezone

import "time"

// Timezone do estúdio; datas de agendamento são validadas nele.
const StudioTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(StudioTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a data de hoje (meia-noite) no fuso do estúdio.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
