package main

import (
	"context"
	"net/http"

	"github.com/orgchart/orgchart-backend/internal/api"
	"github.com/orgchart/orgchart-backend/internal/auth"
	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/orgchart/orgchart-backend/internal/database"
	"github.com/orgchart/orgchart-backend/internal/logger"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/orgchart/orgchart-backend/internal/pdl"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

func main() {
	ctx := context.Background()
	cfg := config.New()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		logrus.WithError(err).Fatal("creating logger")
	}

	exporter, err := prometheus.New()
	if err != nil {
		log.Fatal(err)
	}
	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	meter := provider.Meter("github.com/orgchart/orgchart-backend")

	errors, err := meter.Int64Counter("errors")
	if err != nil {
		log.Fatalf("creating error counter: %v", err)
	}

	if err := database.Migrate(cfg.DBConnectionDSN, log.WithField("component", "migrations")); err != nil {
		log.WithError(err).Fatal("migrating database")
	}

	pool, closers, err := database.NewPool(ctx, cfg.DBConnectionDSN, log.WithField("component", "database"))
	if err != nil {
		log.WithError(err).Fatal("connecting to database")
	}
	defer func() {
		if err := closers.Close(); err != nil {
			log.WithError(err).Warn("closing database dialers")
		}
	}()

	repo := database.New(pool, log.WithField("component", "database"))
	defer repo.Close()
	if err := repo.Metrics(meter); err != nil {
		log.WithError(err).Fatal("setting up database metrics")
	}

	pdlClient := pdl.New(cfg.PDL, errors, log.WithField("client", "pdl"))
	if pdlClient.Configured() {
		log.Infof("people data labs enabled, API key read from %s", cfg.PDL.KeySource)
	}

	handler := api.New(
		repo,
		orgchart.NewService(repo, log.WithField("component", "orgchart")),
		pdlClient,
		api.Config{
			MaxUploadBytes: cfg.MaxUploadBytes,
			Providers:      cfg.Providers,
			PDLKeySource:   cfg.PDL.KeySource,
		},
		log.WithField("component", "api"),
	)

	var authMW auth.Middleware
	if cfg.RunAsUser != "" && cfg.Audience == "" {
		log.Infof("Running as user %s", cfg.RunAsUser)
		authMW = auth.StaticUser(cfg.RunAsUser)
	} else {
		authMW = auth.ValidateIAPJWT(cfg.Audience, log.WithField("component", "auth"))
	}

	router, err := api.NewRouter(handler, meter, authMW)
	if err != nil {
		log.WithError(err).Fatal("setting up router")
	}

	corsMW := cors.New(
		cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowCredentials: true,
			Debug:            cfg.Logger.Level == "debug",
		})

	http.Handle("/", corsMW.Handler(router))
	http.Handle("/metrics", promhttp.Handler())

	log.Printf("listening on http://%s:%s/", cfg.BindHost, cfg.Port)
	log.Fatal(http.ListenAndServe(cfg.BindHost+":"+cfg.Port, nil))
}
