package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(hhmm string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(hhmm))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", hhmm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseRange parses "HH:MM-HH:MM" and requires the end to be after the start
// on the same day.
func ParseRange(r string) (start, end string, err error) {
	parts := strings.Split(strings.TrimSpace(r), "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid time range %q: want HH:MM-HH:MM", r)
	}
	start, end = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if err := ValidateSpan(start, end); err != nil {
		return "", "", err
	}
	return start, end, nil
}

// ValidateSpan checks both clocks parse and that end is after start.
func ValidateSpan(start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	e, err := ParseClock(end)
	if err != nil {
		return err
	}
	if e <= s {
		return fmt.Errorf("end %s must be after start %s", end, start)
	}
	return nil
}

// SpanMinutes returns end minus start in minutes. Callers validate first.
func SpanMinutes(start, end string) int {
	s, _ := ParseClock(start)
	e, _ := ParseClock(end)
	return e - s
}
