package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"charityd/internal/domain"
	"charityd/internal/sqlinline"
)

// OrganizationRepositoryPG implements domain.OrganizationRepository.
type OrganizationRepositoryPG struct {
	db DB
}

// NewOrganizationRepository creates a new organization repo.
func NewOrganizationRepository(db DB) *OrganizationRepositoryPG {
	return &OrganizationRepositoryPG{db: db}
}

// GetByID loads one organization.
func (r *OrganizationRepositoryPG) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	row := r.db.QueryRow(ctx, sqlinline.QGetOrganization, id)
	var org domain.Organization
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.LogoPath,
		&org.IsLegacyMigrated,
		&org.NeedsTargetMinor,
		&org.NeedsCollectedMinor,
		&org.Timezone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}
