package memory

import (
	"context"

	"mccrew-ai/internal/model"
	"mccrew-ai/internal/session"
)

func (s *implStore) Get(ctx context.Context, conversationID string) (model.Session, error) {
	sess, ok := s.cache.Get(conversationID)
	if !ok {
		return model.Session{}, session.ErrNotFound
	}
	return clone(sess), nil
}

func (s *implStore) Save(ctx context.Context, sess model.Session) error {
	if sess.ConversationID == "" {
		return session.ErrMissingID
	}
	s.cache.Add(sess.ConversationID, clone(sess))
	return nil
}

func (s *implStore) Delete(ctx context.Context, conversationID string) error {
	s.cache.Remove(conversationID)
	return nil
}

// clone copies the pointer fields so callers never share state with the cache.
func clone(s model.Session) model.Session {
	if s.Quiz != nil {
		q := *s.Quiz
		s.Quiz = &q
	}
	if s.Break != nil {
		b := *s.Break
		s.Break = &b
	}
	return s
}
