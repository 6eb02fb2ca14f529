package validators

// Rótulos de força exibidos no formulário de cadastro.
const (
	StrengthWeak   = "Fraca"
	StrengthMedium = "Média"
	StrengthStrong = "Forte"
)

// PasswordScore conta quantos critérios a senha atende:
// comprimento mínimo de 6, letra maiúscula, dígito e caractere especial.
func PasswordScore(pwd string) int {
	score := 0

	if len(pwd) >= 6 {
		score++
	}
	if containsFunc(pwd, isUpper) {
		score++
	}
	if containsFunc(pwd, isDigit) {
		score++
	}
	if containsFunc(pwd, isSymbol) {
		score++
	}

	return score
}

// IsPasswordValid aceita a senha apenas quando todos os quatro
// critérios são atendidos.
func IsPasswordValid(pwd string) bool {
	return PasswordScore(pwd) == 4
}

// PasswordStrengthLabel mapeia o score para o rótulo exibido ao usuário.
func PasswordStrengthLabel(pwd string) string {
	switch score := PasswordScore(pwd); {
	case score <= 1:
		return StrengthWeak
	case score <= 3:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Especial = qualquer coisa fora de A-Z, a-z e 0-9.
func isSymbol(r rune) bool {
	return !isUpper(r) && !isDigit(r) && !(r >= 'a' && r <= 'z')
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
