package model

import "time"

// Employee is a crew member with a planned rota.
type Employee struct {
	ID            string
	Name          string
	HourlyRate    float64
	PlannedShifts []Shift
}

// Shift is a same-day planned shift. Date is YYYY-MM-DD, Start and End are HH:MM
// with End after Start.
type Shift struct {
	Date  string
	Start string
	End   string
}

// PayFrequency is how often crew are paid.
type PayFrequency string

const (
	PayWeekly   PayFrequency = "weekly"
	PayBiweekly PayFrequency = "biweekly"
	PayMonthly  PayFrequency = "monthly"
)

// Valid reports whether f is one of the known frequencies.
func (f PayFrequency) Valid() bool {
	switch f {
	case PayWeekly, PayBiweekly, PayMonthly:
		return true
	}
	return false
}

// PayConfig is the store-wide payroll calendar.
type PayConfig struct {
	Frequency  PayFrequency
	NextPayday string // YYYY-MM-DD
}

// SwapRequest is an append-only shift swap request.
type SwapRequest struct {
	ID         string
	EmployeeID string
	Date       string
	Start      string
	End        string
	Note       string
	CreatedAt  time.Time
}
