package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"charityd/internal/domain"
	"charityd/internal/sqlinline"
)

// SubscriptionRepositoryPG implements domain.SubscriptionRepository over the
// two coexisting schemas: the flat legacy autopayments table and the
// recurring subscription service's tables.
type SubscriptionRepositoryPG struct {
	db DB
}

// NewSubscriptionRepository creates a new subscription repo.
func NewSubscriptionRepository(db DB) *SubscriptionRepositoryPG {
	return &SubscriptionRepositoryPG{db: db}
}

// CountLegacyAutopayments counts active rows in the legacy autopayments
// table for a migrated organization.
func (r *SubscriptionRepositoryPG) CountLegacyAutopayments(ctx context.Context, orgID uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx, sqlinline.QCountLegacyAutopayments, orgID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: legacy autopayments: %v", domain.ErrCollaboratorDown, err)
	}
	return count, nil
}

// CountUniqueSubscriptions counts distinct active subscribers.
func (r *SubscriptionRepositoryPG) CountUniqueSubscriptions(ctx context.Context, orgID uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx, sqlinline.QCountUniqueSubscriptions, orgID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: subscriptions: %v", domain.ErrCollaboratorDown, err)
	}
	return count, nil
}
