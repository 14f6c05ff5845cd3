package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityd/internal/funding"
	"charityd/internal/widget"
	"charityd/internal/widgetcfg"
)

// WidgetService is the engine facade the HTTP layer consumes.
type WidgetService interface {
	BuildWidgetData(ctx context.Context, req widget.DataRequest) (*widget.Data, error)
	OrganizationFunding(ctx context.Context, orgID uuid.UUID, locale string) (funding.Summary, error)
	RenderWidget(ctx context.Context, widgetID uuid.UUID) (*widgetcfg.NormalizedConfig, error)
}

type App struct {
	Widgets WidgetService
	Logger  zerolog.Logger
}

func NewApp(widgets WidgetService, logger zerolog.Logger) *App {
	return &App{Widgets: widgets, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error":   errCode,
		"message": message,
	})
}
