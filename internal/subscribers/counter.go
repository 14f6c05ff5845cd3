// Package subscribers counts an organization's recurring supporters. Two
// counting schemas coexist: organizations migrated from the legacy platform
// keep their flat autopayments table, everything else uses the recurring
// subscription service. The result is cached per organization for ten
// minutes; correctness does not depend on the cache being warm or present.
package subscribers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"charityd/internal/domain"
)

// DefaultTTL bounds how stale a cached subscriber count may be.
const DefaultTTL = 10 * time.Minute

// Counter resolves subscriber counts with optional caching.
type Counter struct {
	subscriptions domain.SubscriptionRepository
	cache         Cache[int]
	logger        zerolog.Logger
}

// NewCounter builds a Counter. cache may be nil to disable caching.
func NewCounter(subscriptions domain.SubscriptionRepository, cache Cache[int], logger zerolog.Logger) *Counter {
	return &Counter{subscriptions: subscriptions, cache: cache, logger: logger}
}

// Count returns the subscriber count for the organization. A collaborator
// failure degrades to 0 with a warning; widget rendering never fails because
// the count was unavailable.
func (c *Counter) Count(ctx context.Context, org *domain.Organization) int {
	key := cacheKey(org)
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			return v
		}
	}

	count, err := c.recount(ctx, org)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("organization_id", org.ID.String()).
			Bool("legacy_migrated", org.IsLegacyMigrated).
			Msg("subscriber count unavailable, using 0")
		return 0
	}

	if c.cache != nil {
		c.cache.Set(key, count)
	}
	return count
}

// recount selects the counting strategy by the tenant's immutable migration
// flag.
func (c *Counter) recount(ctx context.Context, org *domain.Organization) (int, error) {
	if org.IsLegacyMigrated {
		return c.subscriptions.CountLegacyAutopayments(ctx, org.ID)
	}
	return c.subscriptions.CountUniqueSubscriptions(ctx, org.ID)
}

func cacheKey(org *domain.Organization) string {
	return "subscribers:" + org.ID.String()
}
