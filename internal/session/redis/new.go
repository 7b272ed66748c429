package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"mccrew-ai/internal/session"
	"mccrew-ai/pkg/log"
)

const (
	keyPrefix  = "mccrew:session:"
	DefaultTTL = 2 * time.Hour
)

type implStore struct {
	l   log.Logger
	rdb goredis.UniversalClient
	ttl time.Duration
}

var _ session.Store = (*implStore)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient opens a Redis client. The caller owns Close.
func NewClient(opts Options) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// New creates a Redis-backed session store. Every Save refreshes the TTL.
func New(l log.Logger, rdb goredis.UniversalClient, ttl time.Duration) *implStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implStore{
		l:   l,
		rdb: rdb,
		ttl: ttl,
	}
}
