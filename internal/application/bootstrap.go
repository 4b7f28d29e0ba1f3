package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type BootstrapState int

const (
	StateUninitialized BootstrapState = iota
	StateRestoring
	StateReady
)

func (s BootstrapState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("BootstrapState(%d)", int(s))
	}
}

type BootstrapOptions struct {
	// PrefetchActivities lists the catalogue while the session is restored.
	PrefetchActivities bool
}

// Bootstrap sequences startup: restore the session, then gate the roster on
// whether someone is signed in. Once ready it keeps the roster in step with
// later logins and logouts.
type Bootstrap struct {
	sessions   *SessionManager
	cache      *ActivityCache
	enrollment *EnrollmentCoordinator
	opts       BootstrapOptions
	logger     zerolog.Logger

	mu          sync.Mutex
	state       BootstrapState
	unsubscribe func()
}

func NewBootstrap(sessions *SessionManager, cache *ActivityCache, enrollment *EnrollmentCoordinator, opts BootstrapOptions, logger zerolog.Logger) *Bootstrap {
	return &Bootstrap{
		sessions:   sessions,
		cache:      cache,
		enrollment: enrollment,
		opts:       opts,
		logger:     logger.With().Str("component", "bootstrap").Logger(),
	}
}

// Start is idempotent. The returned error is a failed roster refresh; the
// bootstrap still reaches the ready state in that case.
func (b *Bootstrap) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.state != StateUninitialized {
		b.mu.Unlock()
		return nil
	}
	b.state = StateRestoring
	b.unsubscribe = b.sessions.Subscribe(b.onSessionChange)
	b.mu.Unlock()

	var group errgroup.Group
	group.Go(func() error {
		b.sessions.Restore(ctx)
		return nil
	})
	if b.opts.PrefetchActivities {
		group.Go(func() error {
			if _, err := b.cache.List(ctx, domain.ActivityFilters{}); err != nil {
				b.logger.Warn().Err(err).Msg("prefetch activities")
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	b.mu.Lock()
	b.state = StateReady
	b.mu.Unlock()
	b.logger.Debug().Bool("authenticated", b.sessions.IsAuthenticated()).Msg("bootstrap ready")

	return b.gateRoster(ctx)
}

func (b *Bootstrap) gateRoster(ctx context.Context) error {
	if !b.sessions.IsAuthenticated() {
		b.enrollment.ClearRoster()
		return nil
	}

	return b.enrollment.RefreshRoster(ctx)
}

func (b *Bootstrap) onSessionChange(ctx context.Context, _ domain.Session) {
	if b.State() != StateReady {
		return
	}

	if err := b.gateRoster(ctx); err != nil {
		b.logger.Warn().Err(err).Msg("refresh roster after session change")
	}
}

func (b *Bootstrap) State() BootstrapState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Bootstrap) Close() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
