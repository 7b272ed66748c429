package sqlstore

import (
	"context"
	"fmt"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
)

func (r *implRepository) CreateSwap(ctx context.Context, swap model.SwapRequest) (model.SwapRequest, error) {
	row := swapRow{
		ID:         swap.ID,
		EmployeeID: swap.EmployeeID,
		Date:       swap.Date,
		Start:      swap.Start,
		End:        swap.End,
		Note:       swap.Note,
		CreatedAt:  swap.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "sqlstore.CreateSwap: %v", err)
		return model.SwapRequest{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return row.toModel(), nil
}

func (r *implRepository) ListSwaps(ctx context.Context, opt repository.ListSwapsOptions) ([]model.SwapRequest, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if opt.EmployeeID != "" {
		q = q.Where("employee_id = ?", opt.EmployeeID)
	}
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}

	var rows []swapRow
	if err := q.Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "sqlstore.ListSwaps: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	out := make([]model.SwapRequest, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}
