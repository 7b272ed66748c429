package datemath_test

import (
	"testing"
	"time"

	"mccrew-ai/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/London")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Absolute date", relative: "2024-06-03", want: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Bare weekday", relative: "friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Unknown", relative: "some random day", want: baseTime, wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	parser, err := datemath.NewParser("Europe/London")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	// 23:30 UTC on 30 June is already 1 July in London (BST).
	now := time.Date(2024, 6, 30, 23, 30, 0, 0, time.UTC)
	if got := parser.Today(now); got != "2024-07-01" {
		t.Errorf("Today() = %s, want 2024-07-01", got)
	}
}

func TestNextWeekday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	friday := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	got := parser.NextWeekday(friday, time.Friday)
	if got.Format(datemath.DateLayout) != "2024-05-10" {
		t.Errorf("NextWeekday from a Friday should skip a week, got %s", got.Format(datemath.DateLayout))
	}
}

func TestClock(t *testing.T) {
	if m, err := datemath.ParseClock("09:30"); err != nil || m != 570 {
		t.Errorf("ParseClock(09:30) = %d, %v", m, err)
	}
	if _, err := datemath.ParseClock("25:00"); err == nil {
		t.Error("expected error for 25:00")
	}

	start, end, err := datemath.ParseRange("12:00-20:00")
	if err != nil || start != "12:00" || end != "20:00" {
		t.Errorf("ParseRange = %s %s %v", start, end, err)
	}
	if _, _, err := datemath.ParseRange("20:00-12:00"); err == nil {
		t.Error("expected error when end is before start")
	}
	if _, _, err := datemath.ParseRange("noon"); err == nil {
		t.Error("expected error for malformed range")
	}

	if got := datemath.SpanMinutes("17:00", "23:00"); got != 360 {
		t.Errorf("SpanMinutes = %d, want 360", got)
	}
}
