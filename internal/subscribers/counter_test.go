package subscribers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityd/internal/domain"
)

type spySubscriptions struct {
	legacyCalls    int
	recurringCalls int
	legacyCount    int
	recurringCount int
	err            error
}

func (s *spySubscriptions) CountLegacyAutopayments(context.Context, uuid.UUID) (int, error) {
	s.legacyCalls++
	return s.legacyCount, s.err
}

func (s *spySubscriptions) CountUniqueSubscriptions(context.Context, uuid.UUID) (int, error) {
	s.recurringCalls++
	return s.recurringCount, s.err
}

func testOrg(legacy bool) *domain.Organization {
	return &domain.Organization{
		ID:               uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		IsLegacyMigrated: legacy,
	}
}

func TestCountRoutesByMigrationFlag(t *testing.T) {
	spy := &spySubscriptions{legacyCount: 7, recurringCount: 12}
	counter := NewCounter(spy, nil, zerolog.Nop())

	if got := counter.Count(context.Background(), testOrg(true)); got != 7 {
		t.Fatalf("legacy count = %d, want 7", got)
	}
	if spy.legacyCalls != 1 || spy.recurringCalls != 0 {
		t.Fatalf("calls = %d/%d, want legacy only", spy.legacyCalls, spy.recurringCalls)
	}

	if got := counter.Count(context.Background(), testOrg(false)); got != 12 {
		t.Fatalf("recurring count = %d, want 12", got)
	}
	if spy.recurringCalls != 1 {
		t.Fatalf("recurring calls = %d, want 1", spy.recurringCalls)
	}
}

func TestCountWorksWithCacheDisabled(t *testing.T) {
	spy := &spySubscriptions{recurringCount: 3}
	counter := NewCounter(spy, nil, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if got := counter.Count(context.Background(), testOrg(false)); got != 3 {
			t.Fatalf("count = %d, want 3", got)
		}
	}
	if spy.recurringCalls != 3 {
		t.Fatalf("recurring calls = %d, want one per request without cache", spy.recurringCalls)
	}
}

func TestCountUsesCacheWithinTTL(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	spy := &spySubscriptions{recurringCount: 5}
	counter := NewCounter(spy, NewTTLCache[int](DefaultTTL, clock), zerolog.Nop())

	counter.Count(context.Background(), testOrg(false))
	counter.Count(context.Background(), testOrg(false))
	if spy.recurringCalls != 1 {
		t.Fatalf("recurring calls = %d, want 1 (second hit cached)", spy.recurringCalls)
	}

	now = now.Add(DefaultTTL + time.Second)
	counter.Count(context.Background(), testOrg(false))
	if spy.recurringCalls != 2 {
		t.Fatalf("recurring calls = %d, want recount after TTL", spy.recurringCalls)
	}
}

func TestCountCollaboratorFailureDegradesToZero(t *testing.T) {
	spy := &spySubscriptions{err: errors.New("service down")}
	counter := NewCounter(spy, NewTTLCache[int](DefaultTTL, nil), zerolog.Nop())

	if got := counter.Count(context.Background(), testOrg(false)); got != 0 {
		t.Fatalf("count = %d, want 0 on failure", got)
	}

	// Failures are not cached; the next request retries.
	spy.err = nil
	spy.recurringCount = 9
	if got := counter.Count(context.Background(), testOrg(false)); got != 9 {
		t.Fatalf("count = %d, want 9 after recovery", got)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	cache := NewTTLCache[int](time.Minute, func() time.Time { return now })

	cache.Set("k", 42)
	if v, ok := cache.Get("k"); !ok || v != 42 {
		t.Fatalf("Get = (%d, %v), want (42, true)", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("expired entry must be a miss")
	}
}
