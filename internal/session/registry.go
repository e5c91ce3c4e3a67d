package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"ordering-kiosk/pkg/log"
)

// Registry tracks live sessions behind an expiring LRU. A session expires
// after the idle TTL or when capacity pushes the oldest out; eviction runs
// the session teardown, so no timer survives its session.
type Registry struct {
	deps     Deps
	opts     Options
	l        log.Logger
	sessions *expirable.LRU[string, *Session]
}

// NewRegistry creates the registry all deliveries resolve sessions through.
func NewRegistry(deps Deps, opts Options, l log.Logger) *Registry {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}

	r := &Registry{
		deps: deps,
		opts: opts,
		l:    l,
	}
	r.sessions = expirable.NewLRU[string, *Session](
		opts.MaxSessions,
		func(id string, s *Session) { s.Close() }, // eviction is teardown
		opts.TTL,
	)
	return r
}

// Create mints a session under a fresh ID.
func (r *Registry) Create(ctx context.Context) *Session {
	s := newSession(uuid.NewString(), r.deps)
	r.sessions.Add(s.ID, s)
	r.l.Infof(ctx, "session registry: created %s", s.ID)
	return s
}

// Get returns a live session.
func (r *Registry) Get(id string) (*Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Touch restarts the session's idle window. The middleware calls it on
// every request the session makes.
func (r *Registry) Touch(id string) {
	if s, ok := r.sessions.Peek(id); ok {
		r.sessions.Add(id, s)
	}
}

// Close removes the session; removal runs the teardown callback.
func (r *Registry) Close(ctx context.Context, id string) error {
	if !r.sessions.Remove(id) {
		return ErrSessionNotFound
	}
	r.l.Infof(ctx, "session registry: closed %s", id)
	return nil
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// Config returns the options the registry runs with.
func (r *Registry) Config() Options {
	return r.opts
}

// Shutdown tears down every live session.
func (r *Registry) Shutdown() {
	r.sessions.Purge()
}
