package memory

import (
	"context"
	"sort"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
)

func (r *implRepository) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return model.Employee{}, repository.ErrNotFound
	}
	return cloneEmployee(emp), nil
}

func (r *implRepository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneEmployee(r.employees[id]))
	}
	return out, nil
}

func (r *implRepository) UpsertEmployee(ctx context.Context, opt repository.UpsertEmployeeOptions) (model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, exists := r.employees[opt.ID]
	if !exists {
		r.order = append(r.order, opt.ID)
		emp.ID = opt.ID
	}
	emp.Name = opt.Name
	emp.HourlyRate = opt.HourlyRate
	if opt.ReplaceShifts || !exists {
		emp.PlannedShifts = append([]model.Shift(nil), opt.Shifts...)
	}

	r.employees[opt.ID] = emp
	return cloneEmployee(emp), nil
}

func (r *implRepository) CountEmployees(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.employees), nil
}

func (r *implRepository) GetPayConfig(ctx context.Context) (model.PayConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.payConfig == nil {
		return model.PayConfig{}, repository.ErrNotFound
	}
	return *r.payConfig, nil
}

func (r *implRepository) SavePayConfig(ctx context.Context, cfg model.PayConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payConfig = &cfg
	return nil
}

func (r *implRepository) CreateSwap(ctx context.Context, swap model.SwapRequest) (model.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.swaps = append(r.swaps, swap)
	return swap, nil
}

func (r *implRepository) ListSwaps(ctx context.Context, opt repository.ListSwapsOptions) ([]model.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.SwapRequest, 0, len(r.swaps))
	for i := len(r.swaps) - 1; i >= 0; i-- {
		s := r.swaps[i]
		if opt.EmployeeID != "" && s.EmployeeID != opt.EmployeeID {
			continue
		}
		out = append(out, s)
	}

	// Insertion order is creation order; a stable sort keeps that for equal timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func cloneEmployee(e model.Employee) model.Employee {
	e.PlannedShifts = append([]model.Shift(nil), e.PlannedShifts...)
	return e
}
