package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mccrew-ai/internal/model"
	"mccrew-ai/internal/session"
)

// Defaults when the config leaves size or TTL unset.
const (
	DefaultSize = 10000
	DefaultTTL  = 2 * time.Hour
)

type implStore struct {
	cache *expirable.LRU[string, model.Session]
}

var _ session.Store = (*implStore)(nil)

// New creates an in-process session store. Entries expire after ttl and the
// least recently used are evicted beyond size.
func New(size int, ttl time.Duration) *implStore {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implStore{
		cache: expirable.NewLRU[string, model.Session](size, nil, ttl),
	}
}
