package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrganizationRepository defines read access to organizations.
type OrganizationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Organization, error)
}

// ProjectRepository defines read access to projects and their stages.
type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	ListStages(ctx context.Context, projectID uuid.UUID) ([]ProjectStage, error)
}

// DonationRepository sums completed donations for an organization whose
// effective payment time (paid_at, falling back to created_at for legacy
// rows) lies in [from, to). A nil projectID sums organization-wide.
type DonationRepository interface {
	SumCompleted(ctx context.Context, orgID uuid.UUID, projectID *uuid.UUID, from, to time.Time) (int64, error)
}

// SubscriptionRepository exposes the two subscriber-counting schemas.
type SubscriptionRepository interface {
	CountLegacyAutopayments(ctx context.Context, orgID uuid.UUID) (int, error)
	CountUniqueSubscriptions(ctx context.Context, orgID uuid.UUID) (int, error)
}
