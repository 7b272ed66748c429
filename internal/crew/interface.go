package crew

import (
	"context"

	"mccrew-ai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Employees
	GetEmployee(ctx context.Context, id string) (model.Employee, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	UpsertEmployee(ctx context.Context, input UpsertEmployeeInput) (model.Employee, error)

	// Rota and pay
	TodayShift(ctx context.Context, employeeID string) (ShiftOutput, error)
	WeekShifts(ctx context.Context, employeeID string) (WeekOutput, error)
	EstimatePay(ctx context.Context, employeeID string) (PayEstimateOutput, error)
	NextPayday(ctx context.Context) (NextPaydayOutput, error)
	GetPayConfig(ctx context.Context) (model.PayConfig, error)
	SavePayConfig(ctx context.Context, input SavePayConfigInput) (model.PayConfig, error)

	// Swaps
	CreateSwap(ctx context.Context, input CreateSwapInput) (model.SwapRequest, error)
	ListSwaps(ctx context.Context, input ListSwapsInput) ([]model.SwapRequest, error)

	// SeedDemo loads the demo crew when the store is empty.
	SeedDemo(ctx context.Context) error
}
