package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := Open(Config{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "crew.db")})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	return New(db, log.NewNop())
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestEmployees(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.UpsertEmployee(ctx, repository.UpsertEmployeeOptions{
		ID: "1234", Name: "Alex", HourlyRate: 11.5,
		Shifts: []model.Shift{
			{Date: "2024-05-02", Start: "12:00", End: "20:00"},
			{Date: "2024-05-01", Start: "09:00", End: "17:00"},
		},
	})
	if err != nil {
		t.Fatalf("UpsertEmployee: %v", err)
	}

	emp, err := repo.GetEmployee(ctx, "1234")
	if err != nil {
		t.Fatalf("GetEmployee: %v", err)
	}
	if emp.Name != "Alex" || len(emp.PlannedShifts) != 2 || emp.PlannedShifts[0].Date != "2024-05-01" {
		t.Errorf("unexpected employee: %+v", emp)
	}

	emp, err = repo.UpsertEmployee(ctx, repository.UpsertEmployeeOptions{ID: "1234", Name: "Alex B", HourlyRate: 12})
	if err != nil {
		t.Fatalf("UpsertEmployee overwrite: %v", err)
	}
	if emp.Name != "Alex B" || len(emp.PlannedShifts) != 2 {
		t.Errorf("overwrite should keep shifts: %+v", emp)
	}

	emp, _ = repo.UpsertEmployee(ctx, repository.UpsertEmployeeOptions{
		ID: "1234", Name: "Alex B", HourlyRate: 12, ReplaceShifts: true,
		Shifts: []model.Shift{{Date: "2024-05-03", Start: "08:00", End: "16:00"}},
	})
	if len(emp.PlannedShifts) != 1 || emp.PlannedShifts[0].Date != "2024-05-03" {
		t.Errorf("replace should swap the rota: %+v", emp.PlannedShifts)
	}

	if n, _ := repo.CountEmployees(ctx); n != 1 {
		t.Errorf("expected 1 employee, got %d", n)
	}
	if _, err := repo.GetEmployee(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPayConfig(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.GetPayConfig(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, cfg := range []model.PayConfig{
		{Frequency: model.PayBiweekly, NextPayday: "2024-05-03"},
		{Frequency: model.PayMonthly, NextPayday: "2024-05-31"},
	} {
		if err := repo.SavePayConfig(ctx, cfg); err != nil {
			t.Fatalf("SavePayConfig: %v", err)
		}
		got, err := repo.GetPayConfig(ctx)
		if err != nil || got != cfg {
			t.Errorf("GetPayConfig = %+v, %v; want %+v", got, err, cfg)
		}
	}
}

func TestSwaps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.CreateSwap(ctx, model.SwapRequest{
			ID: id, EmployeeID: "1234", Date: "2024-05-04", Start: "09:00", End: "17:00",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("CreateSwap: %v", err)
		}
	}

	got, err := repo.ListSwaps(ctx, repository.ListSwapsOptions{Limit: 2})
	if err != nil {
		t.Fatalf("ListSwaps: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("unexpected swaps: %+v", got)
	}
}
