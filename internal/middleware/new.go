package middleware

import (
	"mccrew-ai/config"
	"mccrew-ai/pkg/log"
)

// Middleware holds the shared gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A non-positive rate disables limiting.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.PerMin),
	}
}
