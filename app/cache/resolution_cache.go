package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"access-service/app/domain"
	"access-service/app/metrics"
)

// Default sizing; overridable through the constructor.
const (
	DefaultTTL  = 5 * time.Minute
	DefaultSize = 4096
)

// ResolutionCache maps a certificate subject to its resolved user and
// program grants, bounding how often the user store is read. Expiry is
// absolute from write so stale access after a revocation is bounded and
// predictable; explicit Invalidate makes privilege changes take effect
// on the next request instead.
//
// Misses are single-flighted: under concurrent requests for the same
// uncached subject at most one resolver call is in flight and the rest
// await its result.
type ResolutionCache struct {
	entries *expirable.LRU[string, *domain.ResolvedUser]
	flights singleflight.Group
	ttl     time.Duration
	logger  *slog.Logger
}

// NewResolutionCache creates a resolution cache with the given TTL and
// maximum entry count. Zero values fall back to the defaults.
func NewResolutionCache(ttl time.Duration, size int, logger *slog.Logger) *ResolutionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if size <= 0 {
		size = DefaultSize
	}

	return &ResolutionCache{
		entries: expirable.NewLRU[string, *domain.ResolvedUser](size, nil, ttl),
		ttl:     ttl,
		logger:  logger.With("component", "resolution_cache"),
	}
}

// GetOrResolve returns the cached resolution for the subject, or runs
// resolve once and caches its result. Concurrent callers for the same
// uncached subject share a single resolver call.
//
// The resolver runs detached from the caller's context: an aborted
// request must not corrupt shared state, and a completed resolution is
// still useful to the callers that are waiting on the same flight and to
// subsequent requests. Failed resolutions are never cached.
func (c *ResolutionCache) GetOrResolve(ctx context.Context, subject string, resolve func(context.Context) (*domain.ResolvedUser, error)) (*domain.ResolvedUser, error) {
	if user, ok := c.entries.Get(subject); ok {
		metrics.ResolutionCacheHits.Inc()
		return user, nil
	}

	resolveCtx := context.WithoutCancel(ctx)
	value, err, shared := c.flights.Do(subject, func() (interface{}, error) {
		// Re-check under the flight: another caller may have populated
		// the entry between our miss and acquiring the flight.
		if user, ok := c.entries.Get(subject); ok {
			return user, nil
		}

		metrics.ResolutionCacheMisses.Inc()
		user, err := resolve(resolveCtx)
		if err != nil {
			return nil, err
		}

		c.entries.Add(subject, user)
		return user, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		c.logger.Debug("resolver call shared across concurrent requests")
	}

	return value.(*domain.ResolvedUser), nil
}

// Invalidate synchronously drops the subject's cached resolution. Must
// be called by whichever component grants or revokes program access.
func (c *ResolutionCache) Invalidate(subject string) {
	if c.entries.Remove(subject) {
		metrics.ResolutionCacheInvalidations.Inc()
		c.logger.Debug("resolution invalidated")
	}
}

// Len returns the number of live cache entries.
func (c *ResolutionCache) Len() int {
	return c.entries.Len()
}
