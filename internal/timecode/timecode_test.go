package timecode

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"00:00:00.000", 0},
		{"00:00:02.000", 2 * time.Second},
		{"00:01:30.500", 90*time.Second + 500*time.Millisecond},
		{"01:02:03.250", time.Hour + 2*time.Minute + 3*time.Second + 250*time.Millisecond},
		{"00:00:05", 5 * time.Second},
		{"00:00:00.5", 500 * time.Millisecond},
		{"23:59:59.999999", 23*time.Hour + 59*time.Minute + 59*time.Second + 999999*time.Microsecond},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:00",
		"1:2",
		"24:00:00.000",
		"00:60:00.000",
		"00:00:61.000",
		"00:00:aa.000",
		"00:00:00.1234567",
		"xx:00:00.000",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("03:10")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if want := 3*time.Minute + 10*time.Second; got != want {
		t.Fatalf("ParseClock = %v, want %v", got, want)
	}

	for _, input := range []string{"", "03:10:00", "60:00", "00:60", "a:b"} {
		if _, err := ParseClock(input); err == nil {
			t.Errorf("ParseClock(%q) succeeded, want error", input)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00:00.000"},
		{2 * time.Second, "00:00:02.000"},
		{90*time.Second + 500*time.Millisecond, "00:01:30.500"},
		{time.Hour + 2*time.Minute + 3*time.Second + 999*time.Millisecond + 900*time.Microsecond, "01:02:03.999"},
		{-time.Second, "00:00:00.000"},
	}
	for _, tt := range tests {
		if got := Format(tt.input); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	const value = "00:05:42.125"
	d, err := Parse(value)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Format(d); got != value {
		t.Fatalf("round trip = %q, want %q", got, value)
	}
}
