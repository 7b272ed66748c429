package usecase

import (
	"time"

	"github.com/google/uuid"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/pkg/datemath"
	"mccrew-ai/pkg/log"
)

// implUseCase is the private implementation of crew.UseCase.
type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	dates *datemath.Parser
	now   func() time.Time
	newID func() string
}

var _ crew.UseCase = (*implUseCase)(nil)

// New creates a crew UseCase. dates fixes the store timezone used for "today".
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
