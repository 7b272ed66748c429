package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"mccrew-ai/internal/model"
	"mccrew-ai/internal/session"
)

// sessionDoc is the stored JSON shape.
type sessionDoc struct {
	ConversationID string            `json:"conversation_id"`
	EmployeeID     string            `json:"employee_id,omitempty"`
	Quiz           *model.QuizState  `json:"quiz,omitempty"`
	Break          *model.BreakState `json:"break,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func key(conversationID string) string {
	return keyPrefix + conversationID
}

func (s *implStore) Get(ctx context.Context, conversationID string) (model.Session, error) {
	raw, err := s.rdb.Get(ctx, key(conversationID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Session{}, session.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "session.redis.Get: %v", err)
		return model.Session{}, fmt.Errorf("%w: %v", session.ErrFailedToGet, err)
	}

	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.l.Warnf(ctx, "session.redis.Get: corrupt session %s: %v", conversationID, err)
		return model.Session{}, session.ErrNotFound
	}

	return model.Session{
		ConversationID: doc.ConversationID,
		EmployeeID:     doc.EmployeeID,
		Quiz:           doc.Quiz,
		Break:          doc.Break,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}

func (s *implStore) Save(ctx context.Context, sess model.Session) error {
	if sess.ConversationID == "" {
		return session.ErrMissingID
	}

	raw, err := json.Marshal(sessionDoc{
		ConversationID: sess.ConversationID,
		EmployeeID:     sess.EmployeeID,
		Quiz:           sess.Quiz,
		Break:          sess.Break,
		UpdatedAt:      sess.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", session.ErrFailedToSave, err)
	}

	if err := s.rdb.Set(ctx, key(sess.ConversationID), raw, s.ttl).Err(); err != nil {
		s.l.Errorf(ctx, "session.redis.Save: %v", err)
		return fmt.Errorf("%w: %v", session.ErrFailedToSave, err)
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, conversationID string) error {
	if err := s.rdb.Del(ctx, key(conversationID)).Err(); err != nil {
		s.l.Errorf(ctx, "session.redis.Delete: %v", err)
		return fmt.Errorf("%w: %v", session.ErrFailedToDelete, err)
	}
	return nil
}
