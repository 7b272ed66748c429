package usecase

import (
	"context"
	"sort"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

// TodayShift returns the employee's shift for today, if any.
func (uc *implUseCase) TodayShift(ctx context.Context, employeeID string) (crew.ShiftOutput, error) {
	emp, err := uc.GetEmployee(ctx, employeeID)
	if err != nil {
		return crew.ShiftOutput{}, err
	}

	today := uc.today()
	out := crew.ShiftOutput{Employee: emp, Today: today}
	if s, ok := findShift(emp.PlannedShifts, today); ok {
		out.Shift = &s
		out.Hours = crew.ShiftHours(s)
	}
	return out, nil
}

// WeekShifts returns shifts dated today through today+6, in date order.
func (uc *implUseCase) WeekShifts(ctx context.Context, employeeID string) (crew.WeekOutput, error) {
	emp, err := uc.GetEmployee(ctx, employeeID)
	if err != nil {
		return crew.WeekOutput{}, err
	}

	start := uc.dates.StartOfDay(uc.now())
	from := start.Format(datemath.DateLayout)
	to := start.AddDate(0, 0, crew.WeekDays-1).Format(datemath.DateLayout)

	out := crew.WeekOutput{Employee: emp, From: from, To: to}
	for _, s := range emp.PlannedShifts {
		if s.Date >= from && s.Date <= to {
			out.Shifts = append(out.Shifts, s)
			out.TotalHours += crew.ShiftHours(s)
		}
	}
	sort.SliceStable(out.Shifts, func(i, j int) bool {
		if out.Shifts[i].Date != out.Shifts[j].Date {
			return out.Shifts[i].Date < out.Shifts[j].Date
		}
		return out.Shifts[i].Start < out.Shifts[j].Start
	})
	return out, nil
}

func (uc *implUseCase) today() string {
	return uc.dates.Today(uc.now())
}

func findShift(shifts []model.Shift, date string) (model.Shift, bool) {
	for _, s := range shifts {
		if s.Date == date {
			return s, true
		}
	}
	return model.Shift{}, false
}
