package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

// GetEmployee resolves an employee by ID.
func (uc *implUseCase) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Employee{}, crew.ErrEmployeeIDRequired
	}

	emp, err := uc.repo.GetEmployee(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Employee{}, crew.ErrEmployeeNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "crew.usecase.GetEmployee: %v", err)
		return model.Employee{}, err
	}
	return emp, nil
}

func (uc *implUseCase) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	emps, err := uc.repo.ListEmployees(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "crew.usecase.ListEmployees: %v", err)
		return nil, err
	}
	return emps, nil
}

// UpsertEmployee overwrites an employee by ID. A blank name becomes "Crew <id>"
// and a non-positive rate falls back to DefaultHourlyRate.
func (uc *implUseCase) UpsertEmployee(ctx context.Context, input crew.UpsertEmployeeInput) (model.Employee, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return model.Employee{}, crew.ErrEmployeeIDRequired
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Crew " + id
	}
	rate := input.HourlyRate
	if rate <= 0 {
		rate = crew.DefaultHourlyRate
	}

	for _, s := range input.Shifts {
		if err := uc.validateShift(s); err != nil {
			return model.Employee{}, err
		}
	}

	emp, err := uc.repo.UpsertEmployee(ctx, repository.UpsertEmployeeOptions{
		ID:            id,
		Name:          name,
		HourlyRate:    rate,
		ReplaceShifts: input.Shifts != nil,
		Shifts:        input.Shifts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "crew.usecase.UpsertEmployee: %v", err)
		return model.Employee{}, err
	}
	return emp, nil
}

func (uc *implUseCase) validateShift(s model.Shift) error {
	if _, err := uc.dates.ParseDate(s.Date); err != nil {
		return fmt.Errorf("%w: %v", crew.ErrInvalidShift, err)
	}
	if err := datemath.ValidateSpan(s.Start, s.End); err != nil {
		return fmt.Errorf("%w: %v", crew.ErrInvalidShift, err)
	}
	return nil
}
