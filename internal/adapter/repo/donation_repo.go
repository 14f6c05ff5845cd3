package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"charityd/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository.
type DonationRepositoryPG struct {
	db DB
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(db DB) *DonationRepositoryPG {
	return &DonationRepositoryPG{db: db}
}

// SumCompleted returns the minor-unit total of completed donations whose
// effective date (paid_at with created_at fallback) lies in [from, to).
// A nil projectID sums organization-wide. Sums to 0 when nothing matches.
func (r *DonationRepositoryPG) SumCompleted(ctx context.Context, orgID uuid.UUID, projectID *uuid.UUID, from, to time.Time) (int64, error) {
	row := r.db.QueryRow(ctx, sqlinline.QSumCompletedDonations, orgID, from, to, projectID)
	var sum int64
	if err := row.Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}
