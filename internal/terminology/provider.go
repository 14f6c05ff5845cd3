// Package terminology supplies the words a widget uses to talk about its
// tenant. The lookup is best effort: widget data must render even when the
// terminology collaborator is down, so any failure falls back to the fixed
// default wording.
package terminology

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityd/internal/domain"
)

// Source is the collaborator that stores per-tenant wording.
type Source interface {
	Terminology(ctx context.Context, orgID uuid.UUID) (*domain.Terminology, error)
}

// Fallback is the wording used when no tenant terminology can be loaded.
var Fallback = domain.Terminology{
	OrgSingular:    "фонд",
	OrgGenitive:    "фонда",
	ActionSupport:  "поддержать",
	MemberSingular: "участник",
	MemberPlural:   "участники",
}

// Provider wraps a Source with the fallback rule.
type Provider struct {
	source Source
	logger zerolog.Logger
}

// NewProvider builds a Provider.
func NewProvider(source Source, logger zerolog.Logger) *Provider {
	return &Provider{source: source, logger: logger}
}

// Get returns the tenant's terminology, or the fallback on any failure.
// It never returns an error.
func (p *Provider) Get(ctx context.Context, orgID uuid.UUID) domain.Terminology {
	if p.source == nil {
		return Fallback
	}
	terms, err := p.source.Terminology(ctx, orgID)
	if err != nil || terms == nil {
		p.logger.Warn().Err(err).
			Str("organization_id", orgID.String()).
			Msg("terminology lookup failed, using fallback")
		return Fallback
	}
	return *terms
}
