package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves calendar dates in a fixed store timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/London"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) string {
	return p.StartOfDay(now).Format(DateLayout)
}

// ParseDate parses a strict YYYY-MM-DD date at midnight in the parser's timezone.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// Parse accepts either an absolute YYYY-MM-DD date or a relative phrase
// ("today", "tomorrow", "in 3 days", "next friday", "friday") and returns
// midnight of that day. baseTime is the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if t, err := p.ParseDate(relative); err == nil {
		return t, nil
	}

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if wd, ok := weekdays[strings.TrimPrefix(relative, "next ")]; ok {
		return p.NextWeekday(baseTime, wd), nil
	}

	return baseTime, fmt.Errorf("unrecognised date: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// NextWeekday returns midnight of the first target weekday strictly after baseTime's day.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	start := p.StartOfDay(baseTime)
	daysUntil := int(target - start.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return start.AddDate(0, 0, daysUntil)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
