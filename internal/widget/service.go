// Package widget assembles the data an embedded widget needs: funding
// summaries, resolved goal and requisites overrides, terminology and
// subscriber counts for the data path, and the normalized configuration for
// the render path. The two paths are independent.
package widget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityd/internal/collect"
	"charityd/internal/domain"
	"charityd/internal/funding"
	"charityd/internal/money"
	"charityd/internal/override"
	"charityd/internal/storage"
	"charityd/internal/subscribers"
	"charityd/internal/terminology"
	"charityd/internal/widgetcfg"
)

// OverrideSource consults one scope level for each overridable setting.
// The boolean result distinguishes "not configured here" from a value.
type OverrideSource interface {
	MonthlyGoalMinor(ctx context.Context, level override.Level) (int64, bool, error)
	CollectedOverrideMinor(ctx context.Context, level override.Level) (int64, bool, error)
	BankRequisites(ctx context.Context, level override.Level) (*domain.BankRequisites, bool, error)
}

// WidgetSource loads widgets and whichever relation collections apply to
// their kind. Relations not applicable to the kind stay unloaded.
type WidgetSource interface {
	Widget(ctx context.Context, id uuid.UUID) (*domain.Widget, error)
	Relations(ctx context.Context, w *domain.Widget) (widgetcfg.Injectables, error)
}

// Deps wires the service's collaborators.
type Deps struct {
	Organizations domain.OrganizationRepository
	Projects      domain.ProjectRepository
	Widgets       WidgetSource
	Overrides     OverrideSource
	Collector     *collect.Aggregator
	Subscribers   *subscribers.Counter
	Terminology   *terminology.Provider
	Formatters    map[string]*money.Formatter
	DefaultLocale string
	Logger        zerolog.Logger
}

// Service is the engine facade used by the HTTP layer.
type Service struct {
	deps Deps
}

// NewService builds the service.
func NewService(deps Deps) *Service {
	return &Service{deps: deps}
}

// DataRequest identifies what a widget-data request is scoped to.
type DataRequest struct {
	OrganizationID uuid.UUID
	ProjectID      *uuid.UUID
	SiteID         *uuid.UUID
	Locale         string
}

// BuildWidgetData assembles the full widget data response. Core entities
// (organization, requested project) must exist; everything else degrades
// gracefully so the caller always gets a complete, well-shaped result.
func (s *Service) BuildWidgetData(ctx context.Context, req DataRequest) (*Data, error) {
	f := s.formatterFor(req.Locale)

	org, err := s.deps.Organizations.GetByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("load organization: %w", err)
	}

	data := &Data{
		Organization:    organizationView(f, org),
		Stages:          []StageView{},
		Terminology:     s.deps.Terminology.Get(ctx, org.ID),
		SubscriberCount: s.deps.Subscribers.Count(ctx, org),
	}

	if req.ProjectID != nil {
		project, err := s.deps.Projects.GetByID(ctx, *req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("load project: %w", err)
		}
		view := projectView(f, project)
		data.Project = &view
		data.Stages = s.stageViews(ctx, f, project.ID)
	}

	chain := override.NewChain(org.ID, req.ProjectID, req.SiteID)
	data.MonthlyGoal = s.monthlyGoal(ctx, f, chain, org.ID, req.ProjectID)
	data.Requisites = s.requisites(ctx, chain)

	return data, nil
}

// OrganizationFunding computes the entity-level funding summary for an
// organization's needs. Progress is deliberately unclamped here so
// over-funded needs stay visible.
func (s *Service) OrganizationFunding(ctx context.Context, orgID uuid.UUID, locale string) (funding.Summary, error) {
	org, err := s.deps.Organizations.GetByID(ctx, orgID)
	if err != nil {
		return funding.Summary{}, fmt.Errorf("load organization: %w", err)
	}
	f := s.formatterFor(locale)
	return funding.Compute(f, org.NeedsTargetMinor, org.NeedsCollectedMinor, funding.ModeEntity), nil
}

// RenderWidget produces the normalized configuration for one widget. A
// relation loading failure degrades to the stored base config alone.
func (s *Service) RenderWidget(ctx context.Context, widgetID uuid.UUID) (*widgetcfg.NormalizedConfig, error) {
	w, err := s.deps.Widgets.Widget(ctx, widgetID)
	if err != nil {
		return nil, fmt.Errorf("load widget: %w", err)
	}
	inj, err := s.deps.Widgets.Relations(ctx, w)
	if err != nil {
		s.deps.Logger.Warn().Err(err).
			Str("widget_id", widgetID.String()).
			Msg("widget relations unavailable, rendering base config only")
		inj = widgetcfg.Injectables{}
	}
	cfg := widgetcfg.Normalize(w.Config, inj)
	return &cfg, nil
}

// monthlyGoal resolves the configured monthly goal through the scope chain.
// When a positive goal is found, the collected side comes from the
// collected-amount override if configured, otherwise from the month's
// aggregated donations. Lookup failures degrade to no goal.
func (s *Service) monthlyGoal(ctx context.Context, f *money.Formatter, chain override.Chain, orgID uuid.UUID, projectID *uuid.UUID) *MonthlyGoalView {
	goal, ok, err := override.Resolve(chain, func(l override.Level) (int64, bool, error) {
		return s.deps.Overrides.MonthlyGoalMinor(ctx, l)
	})
	if err != nil {
		s.deps.Logger.Warn().Err(err).Str("organization_id", orgID.String()).Msg("monthly goal lookup failed")
		return nil
	}
	if !ok || goal <= 0 {
		return nil
	}

	collected, fromOverride, err := override.Resolve(chain, func(l override.Level) (int64, bool, error) {
		return s.deps.Overrides.CollectedOverrideMinor(ctx, l)
	})
	if err != nil {
		s.deps.Logger.Warn().Err(err).Str("organization_id", orgID.String()).Msg("collected override lookup failed")
		fromOverride = false
	}
	if !fromOverride {
		collected, err = s.deps.Collector.SumForCurrentMonth(ctx, orgID, projectID)
		if err != nil {
			s.deps.Logger.Warn().Err(err).Str("organization_id", orgID.String()).Msg("monthly collection sum failed, using 0")
			collected = 0
		}
	}

	return &MonthlyGoalView{
		Goal:                  f.FromMinor(goal),
		Collected:             f.FromMinor(collected),
		ProgressPercentage:    funding.Progress(goal, collected, funding.ModeMonthlyGoal),
		CollectedFromOverride: fromOverride,
	}
}

// requisites resolves bank requisites through the scope chain; levels with
// empty records count as not configured.
func (s *Service) requisites(ctx context.Context, chain override.Chain) *domain.BankRequisites {
	req, ok, err := override.Resolve(chain, func(l override.Level) (*domain.BankRequisites, bool, error) {
		r, configured, err := s.deps.Overrides.BankRequisites(ctx, l)
		if err != nil {
			return nil, false, err
		}
		if !configured || r == nil || r.Empty() {
			return nil, false, nil
		}
		return r, true, nil
	})
	if err != nil {
		s.deps.Logger.Warn().Err(err).Msg("requisites lookup failed")
		return nil
	}
	if !ok {
		return nil
	}
	return req
}

func (s *Service) stageViews(ctx context.Context, f *money.Formatter, projectID uuid.UUID) []StageView {
	stages, err := s.deps.Projects.ListStages(ctx, projectID)
	if err != nil {
		s.deps.Logger.Warn().Err(err).Str("project_id", projectID.String()).Msg("stage listing failed, omitting stages")
		return []StageView{}
	}
	views := make([]StageView, 0, len(stages))
	for _, st := range stages {
		views = append(views, stageView(f, st))
	}
	return views
}

func (s *Service) formatterFor(locale string) *money.Formatter {
	if f, ok := s.deps.Formatters[locale]; ok {
		return f
	}
	if f, ok := s.deps.Formatters[s.deps.DefaultLocale]; ok {
		return f
	}
	// Caller bug: a service must be wired with at least its default locale.
	panic("widget: no formatter configured for default locale")
}

func organizationView(f *money.Formatter, org *domain.Organization) OrganizationView {
	return OrganizationView{
		ID:      org.ID.String(),
		Name:    org.Name,
		LogoURL: storage.CanonicalURL(org.LogoPath),
		Needs:   funding.Compute(f, org.NeedsTargetMinor, org.NeedsCollectedMinor, funding.ModeEntity),
	}
}

func projectView(f *money.Formatter, p *domain.Project) ProjectView {
	return ProjectView{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    storage.CanonicalURL(p.ImagePath),
		Status:      string(p.Status),
		Funding:     funding.Compute(f, p.TargetMinor, p.CollectedMinor, funding.ModeEntity),
	}
}

func stageView(f *money.Formatter, st domain.ProjectStage) StageView {
	return StageView{
		ID:          st.ID.String(),
		Title:       st.Title,
		Description: st.Description,
		ImageURL:    storage.CanonicalURL(st.ImagePath),
		Status:      string(st.Status),
		Order:       st.Order,
		Funding:     funding.Compute(f, st.TargetMinor, st.CollectedMinor, funding.ModeEntity),
	}
}
