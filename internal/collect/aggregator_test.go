package collect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"charityd/internal/domain"
)

var testOrgID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// fakeDonations applies the same inclusion rule as the production SQL:
// completed status, effective date inside [from, to), optional project scope.
type fakeDonations struct {
	rows []domain.Donation

	gotFrom, gotTo time.Time
	gotProjectID   *uuid.UUID
	calls          int
}

func (f *fakeDonations) SumCompleted(_ context.Context, orgID uuid.UUID, projectID *uuid.UUID, from, to time.Time) (int64, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotProjectID = from, to, projectID
	w := Window{Start: from, End: to}
	var sum int64
	for _, d := range f.rows {
		if d.OrganizationID != orgID || d.Status != domain.DonationStatusCompleted {
			continue
		}
		if projectID != nil && (d.ProjectID == nil || *d.ProjectID != *projectID) {
			continue
		}
		if !w.Contains(EffectiveDate(d)) {
			continue
		}
		sum += d.AmountMinor
	}
	return sum, nil
}

func TestAppLocation(t *testing.T) {
	loc, err := AppLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("AppLocation(Europe/Moscow) error: %v", err)
	}
	if loc.String() != "Europe/Moscow" {
		t.Fatalf("location = %q, want Europe/Moscow", loc)
	}

	if _, err := AppLocation("Mars/Olympus"); !errors.Is(err, domain.ErrInvalidTimezone) {
		t.Fatalf("error = %v, want ErrInvalidTimezone", err)
	}
}

func TestCurrentMonthWindowInAppTimezone(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2025-03-31 21:30 UTC is already 2025-04-01 00:30 in Moscow. The window
	// must be April, not March.
	now := time.Date(2025, 3, 31, 21, 30, 0, 0, time.UTC)
	w := CurrentMonth(now, moscow)

	wantStart := time.Date(2025, 4, 1, 0, 0, 0, 0, moscow)
	wantEnd := time.Date(2025, 5, 1, 0, 0, 0, 0, moscow)
	if !w.Start.Equal(wantStart) {
		t.Fatalf("Start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Fatalf("End = %v, want %v", w.End, wantEnd)
	}
}

func TestWindowContainsBoundaries(t *testing.T) {
	moscow, _ := time.LoadLocation("Europe/Moscow")
	w := CurrentMonth(time.Date(2025, 4, 15, 12, 0, 0, 0, moscow), moscow)

	lastMomentOfMarch := time.Date(2025, 3, 31, 23, 59, 59, 0, moscow)
	firstMomentOfApril := time.Date(2025, 4, 1, 0, 0, 0, 0, moscow)
	lastMomentOfApril := time.Date(2025, 4, 30, 23, 59, 0, 0, moscow)

	if w.Contains(lastMomentOfMarch) {
		t.Fatal("March 31 23:59 must not be inside the April window")
	}
	if !w.Contains(firstMomentOfApril) {
		t.Fatal("April 1 00:00 must be inside the April window")
	}
	if !w.Contains(lastMomentOfApril) {
		t.Fatal("April 30 23:59 local must be inside the April window")
	}
	// 20:30 UTC on the last day is 23:30 in Moscow, still April locally.
	utcLate := time.Date(2025, 4, 30, 20, 30, 0, 0, time.UTC)
	if !w.Contains(utcLate) {
		t.Fatal("UTC timestamp that is still April in app time must count")
	}
	// The window ends at May 1 00:00 Moscow, which is April 30 21:00 UTC.
	if w.Contains(time.Date(2025, 4, 30, 21, 30, 0, 0, time.UTC)) {
		t.Fatal("UTC timestamp that is already May in app time must not count")
	}
}

func TestEffectiveDateFallsBackToCreatedAt(t *testing.T) {
	paid := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	created := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	withPaid := domain.Donation{PaidAt: &paid, CreatedAt: created}
	if got := EffectiveDate(withPaid); !got.Equal(paid) {
		t.Fatalf("EffectiveDate = %v, want paid_at %v", got, paid)
	}
	legacy := domain.Donation{PaidAt: nil, CreatedAt: created}
	if got := EffectiveDate(legacy); !got.Equal(created) {
		t.Fatalf("EffectiveDate = %v, want created_at %v", got, created)
	}
}

func TestSumForCurrentMonthInclusionRule(t *testing.T) {
	moscow, _ := time.LoadLocation("Europe/Moscow")
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, moscow)

	ts := func(day, hour, min int) time.Time {
		return time.Date(2025, 4, day, hour, min, 0, 0, moscow)
	}
	prevMonth := time.Date(2025, 3, 31, 23, 59, 0, 0, moscow)

	paidMid := ts(15, 10, 0)
	rows := []domain.Donation{
		// Last day of previous month: excluded.
		{OrganizationID: testOrgID, Status: domain.DonationStatusCompleted, AmountMinor: 1000, PaidAt: &prevMonth, CreatedAt: prevMonth},
		// First moment of the month: included.
		{OrganizationID: testOrgID, Status: domain.DonationStatusCompleted, AmountMinor: 2000, CreatedAt: ts(1, 0, 0)},
		// Mid-month with paid_at: included.
		{OrganizationID: testOrgID, Status: domain.DonationStatusCompleted, AmountMinor: 4000, PaidAt: &paidMid, CreatedAt: ts(14, 10, 0)},
		// Pending donation in window: excluded.
		{OrganizationID: testOrgID, Status: domain.DonationStatusPending, AmountMinor: 8000, CreatedAt: ts(10, 0, 0)},
		// Legacy row created in window, no paid_at: included via fallback.
		{OrganizationID: testOrgID, Status: domain.DonationStatusCompleted, AmountMinor: 16000, CreatedAt: ts(20, 18, 30)},
	}

	fake := &fakeDonations{rows: rows}
	agg := NewAggregator(fake, moscow, func() time.Time { return now })

	sum, err := agg.SumForCurrentMonth(context.Background(), testOrgID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 22000 {
		t.Fatalf("sum = %d, want 22000", sum)
	}
	if fake.calls != 1 {
		t.Fatalf("repository consulted %d times, want 1", fake.calls)
	}
	if !fake.gotFrom.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, moscow)) {
		t.Fatalf("from = %v, want start of April", fake.gotFrom)
	}
}

func TestSumForCurrentMonthProjectScope(t *testing.T) {
	moscow, _ := time.LoadLocation("Europe/Moscow")
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, moscow)
	projectID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	otherID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	rows := []domain.Donation{
		{OrganizationID: testOrgID, ProjectID: &projectID, Status: domain.DonationStatusCompleted, AmountMinor: 5000, CreatedAt: now},
		{OrganizationID: testOrgID, ProjectID: &otherID, Status: domain.DonationStatusCompleted, AmountMinor: 7000, CreatedAt: now},
		{OrganizationID: testOrgID, Status: domain.DonationStatusCompleted, AmountMinor: 9000, CreatedAt: now},
	}
	fake := &fakeDonations{rows: rows}
	agg := NewAggregator(fake, moscow, func() time.Time { return now })

	sum, err := agg.SumForCurrentMonth(context.Background(), testOrgID, &projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 5000 {
		t.Fatalf("project-scoped sum = %d, want 5000", sum)
	}

	sum, err = agg.SumForCurrentMonth(context.Background(), testOrgID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 21000 {
		t.Fatalf("organization-wide sum = %d, want 21000", sum)
	}
}

func TestSumForCurrentMonthNoRows(t *testing.T) {
	moscow, _ := time.LoadLocation("Europe/Moscow")
	agg := NewAggregator(&fakeDonations{}, moscow, nil)
	sum, err := agg.SumForCurrentMonth(context.Background(), testOrgID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 0 {
		t.Fatalf("sum = %d, want 0", sum)
	}
}
