package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"mccrew-ai/internal/model"
	"mccrew-ai/internal/session"
)

func TestStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New(10, time.Minute)

	if _, err := s.Get(ctx, "c1"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	in := model.Session{ConversationID: "c1", EmployeeID: "1234", Quiz: &model.QuizState{Index: 1, Score: 1}}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	in.Quiz.Score = 99

	got, err := s.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.EmployeeID != "1234" || got.Quiz == nil || got.Quiz.Score != 1 {
		t.Errorf("unexpected session %+v", got)
	}

	got.Quiz.Index = 5
	again, _ := s.Get(ctx, "c1")
	if again.Quiz.Index != 1 {
		t.Errorf("returned session shares state with the store")
	}

	if err := s.Delete(ctx, "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "c1"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_RequiresID(t *testing.T) {
	if err := New(1, time.Minute).Save(context.Background(), model.Session{}); !errors.Is(err, session.ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := New(10, 20*time.Millisecond)

	if err := s.Save(ctx, model.Session{ConversationID: "c1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	time.Sleep(60 * time.Millisecond)

	if _, err := s.Get(ctx, "c1"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}

func TestStore_Eviction(t *testing.T) {
	ctx := context.Background()
	s := New(2, time.Minute)

	for _, id := range []string{"a", "b", "c"} {
		s.Save(ctx, model.Session{ConversationID: id})
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected oldest session evicted")
	}
	if _, err := s.Get(ctx, "c"); err != nil {
		t.Errorf("expected newest session kept: %v", err)
	}
}
