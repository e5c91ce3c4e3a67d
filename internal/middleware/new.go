package middleware

import (
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/log"
)

type Middleware struct {
	l        log.Logger
	registry *session.Registry
	limiter  *rateLimiter
}

func New(l log.Logger, registry *session.Registry, rateLimitPerMin int) Middleware {
	return Middleware{
		l:        l,
		registry: registry,
		limiter:  newRateLimiter(rateLimitPerMin),
	}
}
