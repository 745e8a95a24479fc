package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter"
	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter/frankfurterclient"
	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/spapiclient"
	"github.com/ArshadAliDS/Amazon/internal/api"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/scheduler"
	"github.com/ArshadAliDS/Amazon/internal/usecases/authenticating"
	"github.com/ArshadAliDS/Amazon/internal/usecases/cataloging"
	"github.com/ArshadAliDS/Amazon/internal/usecases/financing"
	"github.com/ArshadAliDS/Amazon/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	tokenManager := spapiclient.NewTokenManager(cfg)
	spapiClient := spapiclient.NewClient(cfg, tokenManager)

	rateService := frankfurter.New(cfg, frankfurterclient.New(cfg))

	reportService := reporting.NewService(cfg, spapiClient, rateService)
	financeService := financing.NewService(cfg, spapiClient, rateService)
	catalogService := cataloging.NewService(cfg, spapiClient, rateService)

	rateRefresh := scheduler.NewRateRefreshService(cfg, rateService)
	if err := rateRefresh.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting rate refresh scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		reportService,
		financeService,
		catalogService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
