package display

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/media/clips/beach_day.mp4", "Beach Day"},
		{"morning-run.2024.mov", "Morning Run 2024"},
		{"clip.mp4", "Clip"},
		{"", "Unknown Media"},
		{"___.mp4", "Unknown Media"},
	}
	for _, tt := range tests {
		if got := Title(tt.input); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
