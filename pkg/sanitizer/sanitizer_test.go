package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Acme Corp", "Acme Corp"},
		{"surrounding whitespace", "  Acme Corp  ", "Acme Corp"},
		{"interior runs", "Acme    \t Corp", "Acme Corp"},
		{"newlines", "Acme\nCorp", "Acme Corp"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
		{"unicode preserved", "Café  München", "Café München"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Events@ACME.com "); got != "events@acme.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}
