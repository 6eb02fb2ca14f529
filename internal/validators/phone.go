package validators

// Telefones brasileiros: DDD + número, totalizando 11 dígitos.
const PhoneDigits = 11

// NormalizePhone descarta tudo que não for dígito.
func NormalizePhone(phone string) string {
	out := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			out = append(out, phone[i])
		}
	}
	return string(out)
}

// IsPhoneValid aceita apenas telefones que normalizam para
// exatamente 11 dígitos.
func IsPhoneValid(phone string) bool {
	return len(NormalizePhone(phone)) == PhoneDigits
}
