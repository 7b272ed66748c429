package session

import (
	"context"

	"mccrew-ai/internal/model"
)

// Store persists conversation flow state. Get returns ErrNotFound for unknown
// or expired conversations.
//
//go:generate mockery --name Store
type Store interface {
	Get(ctx context.Context, conversationID string) (model.Session, error)
	Save(ctx context.Context, s model.Session) error
	Delete(ctx context.Context, conversationID string) error
}
