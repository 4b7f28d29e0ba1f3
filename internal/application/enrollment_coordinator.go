package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/bradenaw/juniper/xslices"
	"github.com/rs/zerolog"
)

// ErrRosterRefresh marks an enrollment change that went through but whose
// follow-up roster refresh failed.
var ErrRosterRefresh = errors.New("refresh roster")

type sessionSource interface {
	Session() domain.Session
}

// EnrollmentCoordinator runs enroll and unenroll round trips and owns the
// roster of the signed-in user. The roster is empty whenever nobody is
// signed in and only a refresh replaces it.
type EnrollmentCoordinator struct {
	backend  ports.Backend
	cache    *ActivityCache
	sessions sessionSource
	logger   zerolog.Logger

	mu     sync.RWMutex
	roster []domain.MemberActivity

	listeners observers[[]domain.MemberActivity]
}

func NewEnrollmentCoordinator(backend ports.Backend, cache *ActivityCache, sessions sessionSource, logger zerolog.Logger) *EnrollmentCoordinator {
	return &EnrollmentCoordinator{
		backend:  backend,
		cache:    cache,
		sessions: sessions,
		logger:   logger.With().Str("component", "enrollment").Logger(),
	}
}

// Enroll signs the user up for id. On success the activity is refetched and
// the roster refreshed; the returned activity is nil when the refetch failed.
func (c *EnrollmentCoordinator) Enroll(ctx context.Context, id domain.ActivityID) (*domain.Activity, error) {
	if err := c.backend.Enroll(ctx, id); err != nil {
		return nil, mapEnrollmentError(id, err)
	}

	c.logger.Info().Int64("activity_id", int64(id)).Msg("enrolled")
	return c.resync(ctx, id)
}

func (c *EnrollmentCoordinator) Unenroll(ctx context.Context, id domain.ActivityID) (*domain.Activity, error) {
	if err := c.backend.Unenroll(ctx, id); err != nil {
		return nil, mapEnrollmentError(id, err)
	}

	c.logger.Info().Int64("activity_id", int64(id)).Msg("unenrolled")
	return c.resync(ctx, id)
}

func (c *EnrollmentCoordinator) resync(ctx context.Context, id domain.ActivityID) (*domain.Activity, error) {
	var refreshed *domain.Activity
	activity, err := c.cache.Get(ctx, id, GetOptions{Force: true})
	if err != nil {
		c.logger.Warn().Err(err).Int64("activity_id", int64(id)).Msg("refetch activity after enrollment change")
	} else {
		refreshed = &activity
	}

	if err := c.RefreshRoster(ctx); err != nil {
		return refreshed, fmt.Errorf("%w: %w", ErrRosterRefresh, err)
	}

	return refreshed, nil
}

// RefreshRoster replaces the roster with the backend's view. Without a
// session it clears the roster and makes no request.
func (c *EnrollmentCoordinator) RefreshRoster(ctx context.Context) error {
	session := c.sessions.Session()
	if !session.IsAuthenticated() {
		c.ClearRoster()
		return nil
	}

	roster, err := c.backend.MyActivities(ctx)
	if err != nil {
		return fmt.Errorf("fetch roster: %w", err)
	}

	if !c.sessions.Session().Equal(session) {
		// the session changed mid-flight; that change triggers its own refresh
		c.logger.Debug().Msg("discarding roster fetched for a previous session")
		return nil
	}

	c.mu.Lock()
	c.roster = cloneRoster(roster)
	snapshot := cloneRoster(c.roster)
	c.mu.Unlock()

	c.listeners.notify(ctx, snapshot)
	return nil
}

func (c *EnrollmentCoordinator) ClearRoster() {
	c.mu.Lock()
	changed := len(c.roster) > 0
	c.roster = nil
	c.mu.Unlock()

	if changed {
		c.listeners.notify(context.Background(), []domain.MemberActivity{})
	}
}

func (c *EnrollmentCoordinator) Roster() []domain.MemberActivity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneRoster(c.roster)
}

// IsEnrolled reports whether id is on the current roster. It is a display
// helper; enrollment decisions are the backend's.
func (c *EnrollmentCoordinator) IsEnrolled(id domain.ActivityID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.ContainsFunc(c.roster, func(item domain.MemberActivity) bool { return item.ID == id })
}

func (c *EnrollmentCoordinator) Subscribe(fn func([]domain.MemberActivity)) func() {
	if fn == nil {
		return func() {}
	}
	return c.listeners.add(func(_ context.Context, roster []domain.MemberActivity) {
		fn(roster)
	})
}

func mapEnrollmentError(id domain.ActivityID, err error) error {
	switch domain.APICode(err) {
	case domain.CodeScheduleConflict:
		return &domain.EnrollmentConflictError{ActivityID: id, Err: err}
	case domain.CodeNoCapacity:
		return &domain.CapacityExceededError{ActivityID: id, Err: err}
	default:
		return err
	}
}

func cloneRoster(roster []domain.MemberActivity) []domain.MemberActivity {
	if len(roster) == 0 {
		return []domain.MemberActivity{}
	}
	return xslices.Map(roster, func(item domain.MemberActivity) domain.MemberActivity { return item })
}
