package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"charityd/internal/adapter/repo"
	"charityd/internal/collect"
	"charityd/internal/http/handlers"
	"charityd/internal/http/httpapi"
	"charityd/internal/infra"
	"charityd/internal/infra/geoip"
	"charityd/internal/middleware"
	"charityd/internal/money"
	"charityd/internal/subscribers"
	"charityd/internal/terminology"
	"charityd/internal/widget"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	loc, err := collect.AppLocation(cfg.AppTimezone)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid app timezone")
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	orgs := repo.NewOrganizationRepository(runner)
	projects := repo.NewProjectRepository(runner)
	donations := repo.NewDonationRepository(runner)
	overrides := repo.NewOverrideRepository(runner)
	widgets := repo.NewWidgetRepository(runner)
	subscriptions := repo.NewSubscriptionRepository(runner)
	terms := repo.NewTerminologyRepository(runner)

	service := widget.NewService(widget.Deps{
		Organizations: orgs,
		Projects:      projects,
		Widgets:       widgets,
		Overrides:     overrides,
		Collector:     collect.NewAggregator(donations, loc, nil),
		Subscribers: subscribers.NewCounter(
			subscriptions,
			subscribers.NewTTLCache[int](cfg.SubscriberCacheTTL, nil),
			logger,
		),
		Terminology: terminology.NewProvider(terms, logger),
		Formatters: map[string]*money.Formatter{
			"ru": money.NewFormatter("ru", cfg.CurrencyCode, cfg.CurrencySymbol),
			"en": money.NewFormatter("en", cfg.CurrencyCode, cfg.CurrencySymbol),
		},
		DefaultLocale: cfg.DefaultLocale,
		Logger:        logger,
	})

	app := handlers.NewApp(service, logger)

	// Country lookups drive locale detection; missing database means
	// header hints only.
	var country middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		country = resolver.CountryCode
		if closer, ok := resolver.(*geoip.Resolver); ok {
			defer closer.Close()
		}
	}

	router := httpapi.NewRouter(httpapi.RouterDeps{
		App:     app,
		Config:  cfg,
		Logger:  logger,
		Country: country,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
