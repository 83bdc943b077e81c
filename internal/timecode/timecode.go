// Package timecode parses and formats the clock-style duration strings used
// by project files and job definitions.
//
// Project attributes carry HH:MM:SS.mmm values (fractions up to microsecond
// precision are accepted); job windows use the shorter MM:SS form. All values
// are durations measured from the track origin, so they map directly onto
// time.Duration for arithmetic and ordering.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse converts an HH:MM:SS[.fraction] string into a duration. Hours run
// 0-23 and minutes/seconds 0-59, matching the clock format the project
// writer emits. The fraction is optional and may carry up to six digits.
func Parse(value string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timecode %q: expected HH:MM:SS.mmm", value)
	}
	hours, err := parseField(parts[0], 23, "hours")
	if err != nil {
		return 0, fmt.Errorf("timecode %q: %w", value, err)
	}
	minutes, err := parseField(parts[1], 59, "minutes")
	if err != nil {
		return 0, fmt.Errorf("timecode %q: %w", value, err)
	}
	seconds, frac, err := parseSeconds(parts[2])
	if err != nil {
		return 0, fmt.Errorf("timecode %q: %w", value, err)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		frac
	return total, nil
}

// ParseClock converts an MM:SS string into a duration. Both fields run 0-59.
func ParseClock(value string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("clock %q: expected MM:SS", value)
	}
	minutes, err := parseField(parts[0], 59, "minutes")
	if err != nil {
		return 0, fmt.Errorf("clock %q: %w", value, err)
	}
	seconds, err := parseField(parts[1], 59, "seconds")
	if err != nil {
		return 0, fmt.Errorf("clock %q: %w", value, err)
	}
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// Format renders a duration as HH:MM:SS.mmm, truncating to milliseconds.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func parseField(raw string, max int, name string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s field %q", name, raw)
	}
	if value < 0 || value > max {
		return 0, fmt.Errorf("%s field %d out of range 0-%d", name, value, max)
	}
	return value, nil
}

func parseSeconds(raw string) (int, time.Duration, error) {
	whole, fraction, _ := strings.Cut(strings.TrimSpace(raw), ".")
	seconds, err := parseField(whole, 59, "seconds")
	if err != nil {
		return 0, 0, err
	}
	if fraction == "" {
		return seconds, 0, nil
	}
	if len(fraction) > 6 {
		return 0, 0, fmt.Errorf("fraction %q exceeds microsecond precision", fraction)
	}
	digits, err := strconv.Atoi(fraction)
	if err != nil || digits < 0 {
		return 0, 0, fmt.Errorf("invalid fraction %q", fraction)
	}
	// Scale to nanoseconds: ".5" is 500ms, ".500" is also 500ms.
	scale := 1
	for i := len(fraction); i < 9; i++ {
		scale *= 10
	}
	return seconds, time.Duration(digits * scale), nil
}
