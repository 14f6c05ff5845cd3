package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"charityd/internal/domain"
	"charityd/internal/override"
	"charityd/internal/sqlinline"
)

// OverrideRepositoryPG serves per-scope configuration lookups for the
// override chain. Each scope level has its own settings table; a missing row
// or a null column means "not configured at this level".
type OverrideRepositoryPG struct {
	db DB
}

// NewOverrideRepository creates a new override repo.
func NewOverrideRepository(db DB) *OverrideRepositoryPG {
	return &OverrideRepositoryPG{db: db}
}

// MonthlyGoalMinor returns the monthly goal configured at the given level.
func (r *OverrideRepositoryPG) MonthlyGoalMinor(ctx context.Context, level override.Level) (int64, bool, error) {
	goal, _, err := r.goalSettings(ctx, level)
	if err != nil {
		return 0, false, err
	}
	if goal == nil {
		return 0, false, nil
	}
	return *goal, true, nil
}

// CollectedOverrideMinor returns the collected-amount override configured at
// the given level.
func (r *OverrideRepositoryPG) CollectedOverrideMinor(ctx context.Context, level override.Level) (int64, bool, error) {
	_, collected, err := r.goalSettings(ctx, level)
	if err != nil {
		return 0, false, err
	}
	if collected == nil {
		return 0, false, nil
	}
	return *collected, true, nil
}

// BankRequisites returns the payment requisites configured at the given
// level.
func (r *OverrideRepositoryPG) BankRequisites(ctx context.Context, level override.Level) (*domain.BankRequisites, bool, error) {
	query, err := requisitesQuery(level.Scope)
	if err != nil {
		return nil, false, err
	}
	row := r.db.QueryRow(ctx, query, level.ID)
	var req domain.BankRequisites
	err = row.Scan(
		&req.RecipientName,
		&req.AccountNumber,
		&req.BankName,
		&req.BIC,
		&req.CorrAccount,
		&req.INN,
		&req.KPP,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &req, true, nil
}

func (r *OverrideRepositoryPG) goalSettings(ctx context.Context, level override.Level) (goal, collected *int64, err error) {
	query, err := goalQuery(level.Scope)
	if err != nil {
		return nil, nil, err
	}
	row := r.db.QueryRow(ctx, query, level.ID)
	err = row.Scan(&goal, &collected)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return goal, collected, nil
}

func goalQuery(scope override.Scope) (string, error) {
	switch scope {
	case override.ScopeSite:
		return sqlinline.QSiteGoalSettings, nil
	case override.ScopeProject:
		return sqlinline.QProjectGoalSettings, nil
	case override.ScopeOrganization:
		return sqlinline.QOrganizationGoalSettings, nil
	default:
		return "", fmt.Errorf("unknown override scope %q", scope)
	}
}

func requisitesQuery(scope override.Scope) (string, error) {
	switch scope {
	case override.ScopeSite:
		return sqlinline.QSiteRequisites, nil
	case override.ScopeProject:
		return sqlinline.QProjectRequisites, nil
	case override.ScopeOrganization:
		return sqlinline.QOrganizationRequisites, nil
	default:
		return "", fmt.Errorf("unknown override scope %q", scope)
	}
}
