package economy

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12.9, "12"},
		{640, "640"},
		{999, "999"},
		{1000, "1k"},
		{1399, "1.3k"},
		{6400, "6.4k"},
		{640000, "640k"},
		{999999, "999.9k"},
		{6400000, "6.4M"},
		{1e9, "1B"},
		{2.56e10, "25.6B"},
		{-6400, "-6.4k"},
		{-17, "-17"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50, "+50"},
		{0, "0"},
		{-3, "-3"},
		{2500, "+2.5k"},
	}

	for _, tt := range tests {
		if got := FormatDelta(tt.in); got != tt.want {
			t.Errorf("FormatDelta(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
