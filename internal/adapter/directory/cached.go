package directory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/cache"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/logger"
)

// LookupObserver receives the outcome of every directory lookup:
// "hit", "miss" or "error".
type LookupObserver interface {
	ObserveDirectory(source, result string)
}

// Cached serves a directory through an explicit cache. Cache failures are
// logged and fall through to the wrapped source.
type Cached struct {
	next     domain.StoreDirectory
	cache    cache.Cache
	ttl      time.Duration
	log      *logger.Logger
	observer LookupObserver
}

// CachedOption configures a Cached directory.
type CachedOption func(*Cached)

// WithLogger sets the logger used for cache failures.
func WithLogger(log *logger.Logger) CachedOption {
	return func(c *Cached) {
		if log != nil {
			c.log = log
		}
	}
}

// WithObserver sets the lookup observer.
func WithObserver(o LookupObserver) CachedOption {
	return func(c *Cached) {
		c.observer = o
	}
}

// NewCached wraps next with the given cache and entry lifetime.
func NewCached(next domain.StoreDirectory, c cache.Cache, ttl time.Duration, opts ...CachedOption) *Cached {
	cd := &Cached{
		next:  next,
		cache: c,
		ttl:   ttl,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(cd)
	}
	cd.log = cd.log.WithDirectory(next.Name())
	return cd
}

// Name returns the wrapped source name.
func (c *Cached) Name() string {
	return c.next.Name()
}

func (c *Cached) key() string {
	return "directory:" + c.next.Name() + ":cities"
}

// Cities returns the cached city list, loading it from the source on a miss.
func (c *Cached) Cities(ctx context.Context) ([]domain.City, error) {
	data, err := c.cache.Get(ctx, c.key())
	switch {
	case err == nil:
		var cities []domain.City
		if jsonErr := json.Unmarshal(data, &cities); jsonErr == nil {
			c.observe("hit")
			return cities, nil
		}
		c.log.Warn().Str("cache", c.cache.Name()).Msg("discarding unreadable cache entry")
	case !errors.Is(err, cache.ErrMiss):
		c.log.Warn().Err(err).Str("cache", c.cache.Name()).Msg("cache read failed")
	}

	cities, err := c.next.Cities(ctx)
	if err != nil {
		c.observe("error")
		return nil, err
	}
	c.observe("miss")

	if data, err := json.Marshal(cities); err == nil {
		if err := c.cache.Set(ctx, c.key(), data, c.ttl); err != nil {
			c.log.Warn().Err(err).Str("cache", c.cache.Name()).Msg("cache write failed")
		}
	}

	return cities, nil
}

// Invalidate drops the cached city list.
func (c *Cached) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, c.key())
}

func (c *Cached) observe(result string) {
	if c.observer != nil {
		c.observer.ObserveDirectory(c.next.Name(), result)
	}
}

var _ domain.StoreDirectory = (*Cached)(nil)
