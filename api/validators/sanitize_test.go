package validators

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"trims whitespace", "  Marwan  ", 120, "Marwan"},
		{"caps length", "abcdef", 3, "abc"},
		{"no cap when maxLen zero", "abcdef", 0, "abcdef"},
		{"counts runes not bytes", "héllo wörld", 5, "héllo"},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.input, tt.maxLen); got != tt.want {
			t.Fatalf("%s: expected %q got %q", tt.name, tt.want, got)
		}
	}
}
