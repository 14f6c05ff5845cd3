package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"charityd/internal/http/handlers"
	"charityd/internal/infra"
	"charityd/internal/middleware"
)

// RouterDeps carries everything the router wires into middleware.
type RouterDeps struct {
	App     *handlers.App
	Config  *infra.Config
	Logger  zerolog.Logger
	Country middleware.CountryLookup
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.I18N(deps.Config.DefaultLocale, deps.Country),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORSAllowedOrigins),
		middleware.RateLimit(deps.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", deps.App.Health)

	r.Get("/v1/widget-data", deps.App.WidgetData)
	r.Route("/v1/widgets", func(r chi.Router) {
		r.Get("/{id}/render", deps.App.WidgetRender)
	})
	r.Route("/v1/organizations", func(r chi.Router) {
		r.Get("/{id}/funding", deps.App.OrganizationFunding)
	})

	return r
}
