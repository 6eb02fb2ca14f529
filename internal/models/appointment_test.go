package models

import "testing"

func strPtr(s string) *string { return &s }

func TestReferenceImageList(t *testing.T) {
	tests := []struct {
		name   string
		images *string
		want   []string
	}{
		{"absent", nil, nil},
		{"single", strPtr("https://cdn/a.png"), []string{"https://cdn/a.png"}},
		{"two in order", strPtr("https://cdn/a.png,https://cdn/b.jpg"), []string{"https://cdn/a.png", "https://cdn/b.jpg"}},
		{"surrounding whitespace tolerated", strPtr(" https://cdn/a.png , https://cdn/b.jpg "), []string{"https://cdn/a.png", "https://cdn/b.jpg"}},
		{"empty entries dropped", strPtr("https://cdn/a.png,,"), []string{"https://cdn/a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := Appointment{ReferenceImages: tt.images}
			got := ap.ReferenceImageList()

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
