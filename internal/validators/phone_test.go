package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"digits only", "11999999999", "11999999999"},
		{"formatted", "(11) 99999-9999", "11999999999"},
		{"with country code", "+55 11 99999-9999", "5511999999999"},
		{"letters stripped", "11abc999999999", "11999999999"},
		{"empty", "", ""},
		{"only separators", "()- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.phone); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"exact 11 digits", "11999999999", true},
		{"formatted 11 digits", "(11) 99999-9999", true},
		{"10 digits", "1199999999", false},
		{"12 digits", "119999999999", false},
		{"13 with country code", "+5511999999999", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPhoneValid(tt.phone); got != tt.want {
				t.Errorf("IsPhoneValid(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
