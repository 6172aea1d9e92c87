// Package querycache holds fetched server data keyed by (entity, scope).
//
// Entries are never patched in place: after a mutation callers invalidate
// the affected keys and the next Fetch reloads them from the server.
package querycache

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Well known entities.
const (
	EntityRequests  = "requests"
	EntityEquipment = "equipment"
	EntityTeams     = "teams"
	EntityDashboard = "dashboard"
	EntityCalendar  = "calendar"
	EntityReports   = "reports"
)

type Key struct {
	Entity string
	Scope  string
}

func (k Key) String() string {
	if k.Scope == "" {
		return k.Entity
	}
	return k.Entity + "/" + k.Scope
}

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	epoch   uint64
	group   singleflight.Group

	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Cache)

// WithTTL makes entries stale after d; zero keeps them until invalidated.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) { c.ttl = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]*entry),
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the cached value for key, calling load on a miss or when the
// entry is stale. Concurrent fetches of the same key share one load. Errors
// are returned and never cached.
func Fetch[T any](ctx context.Context, c *Cache, key Key, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.fresh(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	res, err, _ := c.group.Do(key.String(), func() (any, error) {
		c.mu.Lock()
		startEpoch := c.epoch
		c.mu.Unlock()

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		// An invalidation that raced the load may cover this key.
		c.entries[key] = &entry{value: v, fetchedAt: c.now(), stale: c.epoch != startEpoch}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		c.logger.Debug("querycache: load failed", zap.String("key", key.String()), zap.Error(err))
		var zero T
		return zero, err
	}
	typed, _ := res.(T)
	return typed, nil
}

func (c *Cache) fresh(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.fetchedAt) >= c.ttl {
		e.stale = true
		return nil, false
	}
	return e.value, true
}

// Invalidate marks keys stale. A key with an empty scope covers every key of
// its entity.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	for _, key := range keys {
		for k, e := range c.entries {
			if k.Entity == key.Entity && (key.Scope == "" || k.Scope == key.Scope) {
				e.stale = true
			}
		}
	}
	c.logger.Debug("querycache: invalidated", zap.Int("keys", len(keys)))
}

// InvalidatePrefix marks stale every key of entity whose scope starts with prefix.
func (c *Cache) InvalidatePrefix(entity, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	for k, e := range c.entries {
		if k.Entity == entity && strings.HasPrefix(k.Scope, prefix) {
			e.stale = true
		}
	}
}

// IsFresh reports whether key holds a value that Fetch would return without loading.
func (c *Cache) IsFresh(key Key) bool {
	_, ok := c.fresh(key)
	return ok
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
