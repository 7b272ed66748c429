package repository

import (
	"context"

	"mccrew-ai/internal/model"
)

// Repository is the composed storage collaborator for the crew domain.
type Repository interface {
	EmployeeRepository
	PayConfigRepository
	SwapRepository
}

// EmployeeRepository stores employees and their planned shifts.
type EmployeeRepository interface {
	GetEmployee(ctx context.Context, id string) (model.Employee, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	UpsertEmployee(ctx context.Context, opt UpsertEmployeeOptions) (model.Employee, error)
	CountEmployees(ctx context.Context) (int, error)
}

// PayConfigRepository stores the single store-wide pay calendar.
type PayConfigRepository interface {
	// GetPayConfig returns ErrNotFound until a config has been saved.
	GetPayConfig(ctx context.Context) (model.PayConfig, error)
	SavePayConfig(ctx context.Context, cfg model.PayConfig) error
}

// SwapRepository is an append-only swap request log.
type SwapRepository interface {
	CreateSwap(ctx context.Context, swap model.SwapRequest) (model.SwapRequest, error)
	ListSwaps(ctx context.Context, opt ListSwapsOptions) ([]model.SwapRequest, error)
}
