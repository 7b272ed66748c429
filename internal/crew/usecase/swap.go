package usecase

import (
	"context"
	"fmt"
	"strings"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

// CreateSwap appends a swap request. The date may be YYYY-MM-DD or a relative
// phrase such as "tomorrow"; it is stored as YYYY-MM-DD.
func (uc *implUseCase) CreateSwap(ctx context.Context, input crew.CreateSwapInput) (model.SwapRequest, error) {
	date, err := uc.dates.Parse(input.Date, uc.now())
	if err != nil {
		return model.SwapRequest{}, fmt.Errorf("%w: %v", crew.ErrInvalidSwap, err)
	}
	if err := datemath.ValidateSpan(input.Start, input.End); err != nil {
		return model.SwapRequest{}, fmt.Errorf("%w: %v", crew.ErrInvalidSwap, err)
	}

	swap, err := uc.repo.CreateSwap(ctx, model.SwapRequest{
		ID:         uc.newID(),
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		Date:       date.Format(datemath.DateLayout),
		Start:      strings.TrimSpace(input.Start),
		End:        strings.TrimSpace(input.End),
		Note:       strings.TrimSpace(input.Note),
		CreatedAt:  uc.now().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "crew.usecase.CreateSwap: %v", err)
		return model.SwapRequest{}, err
	}
	return swap, nil
}

// ListSwaps returns swap requests newest first, DefaultSwapLimit when no limit is given.
func (uc *implUseCase) ListSwaps(ctx context.Context, input crew.ListSwapsInput) ([]model.SwapRequest, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = crew.DefaultSwapLimit
	}

	swaps, err := uc.repo.ListSwaps(ctx, repository.ListSwapsOptions{
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		Limit:      limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "crew.usecase.ListSwaps: %v", err)
		return nil, err
	}
	return swaps, nil
}
