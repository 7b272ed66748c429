package usecase

import (
	"context"
	"testing"
	"time"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/crew/repository/memory"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
	"mccrew-ai/pkg/log"
)

// fixedNow is Wednesday 1 May 2024, mid-morning in London.
var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestUseCase(t *testing.T) (*implUseCase, repository.Repository, *clock) {
	t.Helper()
	dates, err := datemath.NewParser("Europe/London")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	repo := memory.New()
	uc := New(log.NewNop(), repo, dates)
	c := &clock{t: fixedNow}
	uc.now = c.now
	ids := 0
	uc.newID = func() string {
		ids++
		return "swap-" + string(rune('0'+ids))
	}
	return uc, repo, c
}

func seedEmployee(t *testing.T, repo repository.Repository, id string, rate float64, shifts ...model.Shift) {
	t.Helper()
	_, err := repo.UpsertEmployee(context.Background(), repository.UpsertEmployeeOptions{
		ID: id, Name: "Crew " + id, HourlyRate: rate, Shifts: shifts,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
}
