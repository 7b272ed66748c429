package usecase

import (
	"context"
	"errors"
	"time"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

const paydayWeekday = time.Friday

// SeedDemo loads the two demo employees and a biweekly payday next Friday,
// but only into an empty store.
func (uc *implUseCase) SeedDemo(ctx context.Context) error {
	n, err := uc.repo.CountEmployees(ctx)
	if err != nil {
		return err
	}

	if n == 0 {
		day := func(offset int) string {
			return uc.dates.StartOfDay(uc.now()).AddDate(0, 0, offset).Format(datemath.DateLayout)
		}

		demo := []repository.UpsertEmployeeOptions{
			{
				ID: "1234", Name: "Alex", HourlyRate: 11.5,
				Shifts: []model.Shift{
					{Date: day(0), Start: "09:00", End: "17:00"},
					{Date: day(1), Start: "12:00", End: "20:00"},
				},
			},
			{
				ID: "5678", Name: "Sam", HourlyRate: 12.1,
				Shifts: []model.Shift{
					{Date: day(0), Start: "17:00", End: "23:00"},
					{Date: day(2), Start: "08:00", End: "16:00"},
				},
			},
		}
		for _, opt := range demo {
			if _, err := uc.repo.UpsertEmployee(ctx, opt); err != nil {
				return err
			}
		}
		uc.l.Infof(ctx, "crew.usecase.SeedDemo: seeded %d demo employees", len(demo))
	}

	if _, err := uc.repo.GetPayConfig(ctx); errors.Is(err, repository.ErrNotFound) {
		return uc.repo.SavePayConfig(ctx, uc.defaultPayConfig())
	} else if err != nil {
		return err
	}
	return nil
}
