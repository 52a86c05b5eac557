package timeparse

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"2h", 2},
		{"30m", 0.5},
		{"1d", 8},
		{"1w", 40},
		{"1d 4h", 12},
		{"1w 2d 3h 30m", 59.5},
		{"30m 2h", 2.5},
		{"2 h", 2},
		{"0h", 0},
		{"nonsense", 0},
		{"worked a lot 3h", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
