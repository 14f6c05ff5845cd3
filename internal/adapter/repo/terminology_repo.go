package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"charityd/internal/domain"
	"charityd/internal/sqlinline"
)

// TerminologyRepositoryPG implements terminology.Source. A missing row is
// not an error; the provider falls back to default wording.
type TerminologyRepositoryPG struct {
	db DB
}

// NewTerminologyRepository creates a new terminology repo.
func NewTerminologyRepository(db DB) *TerminologyRepositoryPG {
	return &TerminologyRepositoryPG{db: db}
}

// Terminology loads the tenant's wording, or nil when none is configured.
func (r *TerminologyRepositoryPG) Terminology(ctx context.Context, orgID uuid.UUID) (*domain.Terminology, error) {
	row := r.db.QueryRow(ctx, sqlinline.QGetOrganizationTerminology, orgID)
	var t domain.Terminology
	err := row.Scan(&t.OrgSingular, &t.OrgGenitive, &t.ActionSupport, &t.MemberSingular, &t.MemberPlural)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: terminology: %v", domain.ErrCollaboratorDown, err)
	}
	return &t, nil
}
