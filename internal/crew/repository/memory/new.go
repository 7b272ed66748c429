package memory

import (
	"sync"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
)

// implRepository keeps crew data in process memory. Safe for concurrent use.
type implRepository struct {
	mu        sync.RWMutex
	employees map[string]model.Employee
	order     []string
	payConfig *model.PayConfig
	swaps     []model.SwapRequest
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an empty in-memory crew repository.
func New() *implRepository {
	return &implRepository{
		employees: make(map[string]model.Employee),
	}
}
