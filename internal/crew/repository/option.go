package repository

import "mccrew-ai/internal/model"

// UpsertEmployeeOptions creates or overwrites an employee by ID.
type UpsertEmployeeOptions struct {
	ID         string
	Name       string
	HourlyRate float64
	// ReplaceShifts swaps the whole rota for Shifts. When false an existing
	// employee keeps its shifts.
	ReplaceShifts bool
	Shifts        []model.Shift
}

// ListSwapsOptions filters swap requests. Results are newest first.
type ListSwapsOptions struct {
	EmployeeID string
	Limit      int
}
