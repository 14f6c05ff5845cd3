package domain

import (
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusRefunded  DonationStatus = "refunded"
)

// Donation is a single payment toward an organization, optionally
// scoped to a project. PaidAt is nil for records imported from the
// legacy platform, which only tracked creation time.
type Donation struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ProjectID      *uuid.UUID
	Status         DonationStatus
	AmountMinor    int64
	PaidAt         *time.Time
	CreatedAt      time.Time
}
