package application

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/bradenaw/juniper/xslices"
	"github.com/rs/zerolog"
)

type GetOptions struct {
	// Force bypasses the cached record and refetches it.
	Force bool
}

// ActivityCache is the client-side copy of the activity catalogue. It only
// changes after the backend confirmed an operation and holds at most one
// record per id, in insertion order.
type ActivityCache struct {
	backend ports.Backend
	clock   ports.Clock
	logger  zerolog.Logger

	mu          sync.RWMutex
	items       []domain.Activity
	lastErr     error
	lastFetched time.Time

	listeners observers[[]domain.Activity]
}

func NewActivityCache(backend ports.Backend, clock ports.Clock, logger zerolog.Logger) *ActivityCache {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ActivityCache{
		backend: backend,
		clock:   clock,
		logger:  logger.With().Str("component", "activities").Logger(),
	}
}

// List fetches the activities matching filters and replaces the whole cache
// with the result.
func (c *ActivityCache) List(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error) {
	activities, err := c.backend.ListActivities(ctx, filters)
	if err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return nil, err
	}

	items := dedupeActivities(activities)

	c.mu.Lock()
	c.items = items
	c.lastErr = nil
	c.lastFetched = c.clock.Now()
	snapshot := cloneActivities(c.items)
	c.mu.Unlock()

	c.logger.Debug().Int("count", len(snapshot)).Msg("activities replaced")
	c.listeners.notify(ctx, snapshot)

	return cloneActivities(snapshot), nil
}

func (c *ActivityCache) Get(ctx context.Context, id domain.ActivityID, opts GetOptions) (domain.Activity, error) {
	if !opts.Force {
		if activity, ok := c.lookup(id); ok {
			return activity, nil
		}
	}

	activity, err := c.backend.GetActivity(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	c.upsert(ctx, activity, false)
	return cloneActivity(activity), nil
}

func (c *ActivityCache) Create(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return domain.Activity{}, err
	}

	activity, err := c.backend.CreateActivity(ctx, input)
	if err != nil {
		return domain.Activity{}, err
	}

	c.upsert(ctx, activity, true)
	return cloneActivity(activity), nil
}

func (c *ActivityCache) Update(ctx context.Context, id domain.ActivityID, input domain.ActivityInput) (domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return domain.Activity{}, err
	}

	activity, err := c.backend.UpdateActivity(ctx, id, input)
	if err != nil {
		return domain.Activity{}, err
	}

	c.replace(ctx, activity)
	return cloneActivity(activity), nil
}

func (c *ActivityCache) Delete(ctx context.Context, id domain.ActivityID) error {
	if err := c.backend.DeleteActivity(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(item domain.Activity) bool { return item.ID == id })
	removed := len(c.items) != before
	snapshot := cloneActivities(c.items)
	c.mu.Unlock()

	if removed {
		c.listeners.notify(ctx, snapshot)
	}

	return nil
}

// replace swaps the cached record with the same id. Records outside the
// current listing stay out of it.
func (c *ActivityCache) replace(ctx context.Context, activity domain.Activity) {
	c.mu.Lock()
	idx := slices.IndexFunc(c.items, func(item domain.Activity) bool { return item.ID == activity.ID })
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	c.items[idx] = cloneActivity(activity)
	snapshot := cloneActivities(c.items)
	c.mu.Unlock()

	c.listeners.notify(ctx, snapshot)
}

// upsert replaces the record with the same id in place. Unknown records are
// appended, or prepended when prepend is set.
func (c *ActivityCache) upsert(ctx context.Context, activity domain.Activity, prepend bool) {
	record := cloneActivity(activity)

	c.mu.Lock()
	idx := slices.IndexFunc(c.items, func(item domain.Activity) bool { return item.ID == record.ID })
	switch {
	case idx >= 0 && !prepend:
		c.items[idx] = record
	case idx >= 0:
		c.items = slices.Delete(c.items, idx, idx+1)
		c.items = slices.Insert(c.items, 0, record)
	case prepend:
		c.items = slices.Insert(c.items, 0, record)
	default:
		c.items = append(c.items, record)
	}
	snapshot := cloneActivities(c.items)
	c.mu.Unlock()

	c.listeners.notify(ctx, snapshot)
}

func (c *ActivityCache) lookup(id domain.ActivityID) (domain.Activity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := slices.IndexFunc(c.items, func(item domain.Activity) bool { return item.ID == id })
	if idx < 0 {
		return domain.Activity{}, false
	}
	return cloneActivity(c.items[idx]), true
}

// Activities returns a snapshot of the cached records.
func (c *ActivityCache) Activities() []domain.Activity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneActivities(c.items)
}

func (c *ActivityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// LastError is the failure of the most recent List, nil after a success.
func (c *ActivityCache) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *ActivityCache) LastFetched() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastFetched
}

func (c *ActivityCache) Subscribe(fn func([]domain.Activity)) func() {
	if fn == nil {
		return func() {}
	}
	return c.listeners.add(func(_ context.Context, activities []domain.Activity) {
		fn(activities)
	})
}

func dedupeActivities(activities []domain.Activity) []domain.Activity {
	seen := make(map[domain.ActivityID]int, len(activities))
	result := make([]domain.Activity, 0, len(activities))

	for _, activity := range activities {
		if idx, ok := seen[activity.ID]; ok {
			result[idx] = cloneActivity(activity)
			continue
		}
		seen[activity.ID] = len(result)
		result = append(result, cloneActivity(activity))
	}

	return result
}

func cloneActivities(activities []domain.Activity) []domain.Activity {
	if len(activities) == 0 {
		return []domain.Activity{}
	}
	return xslices.Map(activities, cloneActivity)
}

func cloneActivity(activity domain.Activity) domain.Activity {
	activity.AvailableSlots = cloneInt(activity.AvailableSlots)
	activity.EnrolledCount = cloneInt(activity.EnrolledCount)
	return activity
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
