// Package collect sums completed donations for the current calendar month.
//
// The month window is computed in the application timezone, never UTC: a
// donation at 23:59 on the last day of the month in app time belongs to that
// month even when its stored UTC timestamp has already rolled over. Rows
// migrated from the legacy system have no paid_at and fall back to
// created_at; that fallback must not change, or historical donations would
// silently move between months.
package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"charityd/internal/domain"
)

// AppLocation loads the application timezone by IANA name.
func AppLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	return loc, nil
}

// Window is the half-open interval [Start, End) of one calendar month.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CurrentMonth returns the month window enclosing now in the given location.
func CurrentMonth(now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// EffectiveDate is the timestamp a donation is attributed to: paid_at when
// present, created_at for legacy rows that never stored one.
func EffectiveDate(d domain.Donation) time.Time {
	if d.PaidAt != nil {
		return *d.PaidAt
	}
	return d.CreatedAt
}

// Aggregator computes current-month collected totals for organizations.
type Aggregator struct {
	donations domain.DonationRepository
	loc       *time.Location
	now       func() time.Time
}

// NewAggregator builds an Aggregator for the application timezone. The now
// function may be nil, in which case time.Now is used.
func NewAggregator(donations domain.DonationRepository, loc *time.Location, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{donations: donations, loc: loc, now: now}
}

// SumForCurrentMonth returns the minor-unit total of completed donations
// whose effective date falls in the current month. A nil projectID sums
// organization-wide. Returns 0, never an absent value, when nothing matches.
func (a *Aggregator) SumForCurrentMonth(ctx context.Context, orgID uuid.UUID, projectID *uuid.UUID) (int64, error) {
	w := CurrentMonth(a.now(), a.loc)
	return a.donations.SumCompleted(ctx, orgID, projectID, w.Start, w.End)
}
