package crew

import "mccrew-ai/internal/model"

// Defaults applied by UpsertEmployee.
const (
	DefaultHourlyRate = 11.44
	DefaultSwapLimit  = 5
	WeekDays          = 7
)

// --- UseCase Inputs ---

type UpsertEmployeeInput struct {
	ID         string
	Name       string
	HourlyRate float64
	// Shifts replaces the planned rota when non-nil.
	Shifts []model.Shift
}

type SavePayConfigInput struct {
	Frequency  model.PayFrequency
	NextPayday string
}

type CreateSwapInput struct {
	EmployeeID string
	Date       string
	Start      string
	End        string
	Note       string
}

type ListSwapsInput struct {
	EmployeeID string
	Limit      int
}

// --- UseCase Outputs ---

// ShiftOutput is today's shift. Shift is nil when the employee is not rostered.
type ShiftOutput struct {
	Employee model.Employee
	Today    string
	Shift    *model.Shift
	Hours    float64
}

type WeekOutput struct {
	Employee   model.Employee
	From       string
	To         string
	Shifts     []model.Shift
	TotalHours float64
}

// PayEstimate is the demo pay breakdown for one shift.
type PayEstimate struct {
	Hours        float64
	Base         float64
	NightPremium float64
	Total        float64
}

type PayEstimateOutput struct {
	Employee model.Employee
	Today    string
	Shift    *model.Shift
	Estimate PayEstimate
}

type NextPaydayOutput struct {
	Frequency     model.PayFrequency
	NextPayday    string
	Following     string
	RolledForward bool
}
