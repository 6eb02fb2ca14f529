package money

import (
	"fmt"
	"strings"
)

// FormatBRL formata um preço na convenção pt-BR: "R$ 1.234,56".
// Usado apenas na montagem da resposta; nunca persistido.
func FormatBRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	cents := int64(value*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}
