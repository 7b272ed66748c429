package usecase

import (
	"context"
	"errors"
	"fmt"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

// EstimatePay estimates today's pay for the employee.
func (uc *implUseCase) EstimatePay(ctx context.Context, employeeID string) (crew.PayEstimateOutput, error) {
	emp, err := uc.GetEmployee(ctx, employeeID)
	if err != nil {
		return crew.PayEstimateOutput{}, err
	}

	today := uc.today()
	out := crew.PayEstimateOutput{Employee: emp, Today: today}
	if s, ok := findShift(emp.PlannedShifts, today); ok {
		out.Shift = &s
		out.Estimate = crew.EstimateShiftPay(s, emp.HourlyRate)
	}
	return out, nil
}

// NextPayday returns the upcoming payday. A lapsed payday is rolled forward
// one frequency period at a time until it is after today, then persisted.
func (uc *implUseCase) NextPayday(ctx context.Context) (crew.NextPaydayOutput, error) {
	cfg, err := uc.GetPayConfig(ctx)
	if err != nil {
		return crew.NextPaydayOutput{}, err
	}
	if !cfg.Frequency.Valid() {
		return crew.NextPaydayOutput{}, crew.ErrInvalidPayFrequency
	}

	today := uc.today()
	out := crew.NextPaydayOutput{Frequency: cfg.Frequency, NextPayday: cfg.NextPayday}

	if today > cfg.NextPayday {
		next := cfg.NextPayday
		for next <= today {
			if next, err = uc.paydayAfter(next, cfg.Frequency); err != nil {
				return crew.NextPaydayOutput{}, err
			}
		}
		cfg.NextPayday = next
		if err := uc.repo.SavePayConfig(ctx, cfg); err != nil {
			uc.l.Errorf(ctx, "crew.usecase.NextPayday SavePayConfig: %v", err)
			return crew.NextPaydayOutput{}, err
		}
		uc.l.Infof(ctx, "crew.usecase.NextPayday: rolled payday forward to %s", next)
		out.NextPayday = next
		out.RolledForward = true
	}

	following, err := uc.paydayAfter(out.NextPayday, cfg.Frequency)
	if err != nil {
		return crew.NextPaydayOutput{}, err
	}
	out.Following = following
	return out, nil
}

// GetPayConfig returns the saved pay calendar.
func (uc *implUseCase) GetPayConfig(ctx context.Context) (model.PayConfig, error) {
	cfg, err := uc.repo.GetPayConfig(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		cfg = uc.defaultPayConfig()
		if err := uc.repo.SavePayConfig(ctx, cfg); err != nil {
			return model.PayConfig{}, err
		}
		return cfg, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "crew.usecase.GetPayConfig: %v", err)
		return model.PayConfig{}, err
	}
	return cfg, nil
}

// SavePayConfig validates and stores the pay calendar. An empty NextPayday
// keeps the current one.
func (uc *implUseCase) SavePayConfig(ctx context.Context, input crew.SavePayConfigInput) (model.PayConfig, error) {
	if !input.Frequency.Valid() {
		return model.PayConfig{}, crew.ErrInvalidPayFrequency
	}

	cfg := model.PayConfig{Frequency: input.Frequency, NextPayday: input.NextPayday}
	if cfg.NextPayday == "" {
		current, err := uc.GetPayConfig(ctx)
		if err != nil {
			return model.PayConfig{}, err
		}
		cfg.NextPayday = current.NextPayday
	} else if _, err := uc.dates.ParseDate(cfg.NextPayday); err != nil {
		return model.PayConfig{}, fmt.Errorf("%w: %v", crew.ErrInvalidDate, err)
	}

	if err := uc.repo.SavePayConfig(ctx, cfg); err != nil {
		uc.l.Errorf(ctx, "crew.usecase.SavePayConfig: %v", err)
		return model.PayConfig{}, err
	}
	return cfg, nil
}

func (uc *implUseCase) defaultPayConfig() model.PayConfig {
	return model.PayConfig{
		Frequency:  model.PayBiweekly,
		NextPayday: uc.dates.NextWeekday(uc.now(), paydayWeekday).Format(datemath.DateLayout),
	}
}

// paydayAfter advances date by one pay period.
func (uc *implUseCase) paydayAfter(date string, freq model.PayFrequency) (string, error) {
	t, err := uc.dates.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", crew.ErrInvalidDate, err)
	}

	switch freq {
	case model.PayWeekly:
		t = t.AddDate(0, 0, 7)
	case model.PayBiweekly:
		t = t.AddDate(0, 0, 14)
	case model.PayMonthly:
		t = t.AddDate(0, 1, 0)
	default:
		return "", crew.ErrInvalidPayFrequency
	}
	return t.Format(datemath.DateLayout), nil
}
