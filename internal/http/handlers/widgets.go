package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"charityd/internal/domain"
	"charityd/internal/middleware"
	"charityd/internal/widget"
)

// WidgetData serves the funding-path payload: organization needs, optional
// project and stages, resolved monthly goal and requisites, terminology and
// the subscriber count.
func (a *App) WidgetData(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(r.URL.Query().Get("organization_id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "organization_id must be a valid uuid")
		return
	}
	req := widget.DataRequest{
		OrganizationID: orgID,
		Locale:         middleware.LocaleFromContext(r.Context()),
	}
	if req.ProjectID, err = optionalUUID(r, "project_id"); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "project_id must be a valid uuid")
		return
	}
	if req.SiteID, err = optionalUUID(r, "site_id"); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "site_id must be a valid uuid")
		return
	}

	data, err := a.Widgets.BuildWidgetData(r.Context(), req)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "organization or project not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("widget data failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build widget data")
		return
	}
	a.json(w, http.StatusOK, data)
}

// WidgetRender serves the render-path payload: the normalized widget
// configuration with injected relations and the legacy compat list.
func (a *App) WidgetRender(w http.ResponseWriter, r *http.Request) {
	widgetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "widget id must be a valid uuid")
		return
	}

	cfg, err := a.Widgets.RenderWidget(r.Context(), widgetID)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "widget not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("widget render failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to render widget")
		return
	}
	a.json(w, http.StatusOK, cfg)
}

// OrganizationFunding serves the standalone entity-level funding summary.
func (a *App) OrganizationFunding(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "organization id must be a valid uuid")
		return
	}

	summary, err := a.Widgets.OrganizationFunding(r.Context(), orgID, middleware.LocaleFromContext(r.Context()))
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "organization not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("organization funding failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to compute funding")
		return
	}
	a.json(w, http.StatusOK, summary)
}

func optionalUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
