package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"nbrates/internal/adapters/cache"
	"nbrates/internal/adapters/nbrb"
	"nbrates/internal/adapters/postgres"
	"nbrates/internal/api"
	"nbrates/internal/config"
	"nbrates/internal/metrics"
	"nbrates/internal/platform/db"
	httpserver "nbrates/internal/platform/http"
	"nbrates/internal/rate"
	ratehandler "nbrates/internal/rate/handler"
	"nbrates/internal/weekend"
	weekendhandler "nbrates/internal/weekend/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const currencyIDCacheSize = 256

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// NB RB API client
	ratesBaseURL := strings.TrimSuffix(appCfg.RatesAPI.BaseURL, "/")
	rateSource := nbrb.NewClient(baseHTTPClient, ratesBaseURL)

	// Currency id cache
	idCache, err := cache.NewCurrencyIDCache(currencyIDCacheSize)
	if err != nil {
		logrus.WithError(err).Error("Failed to create currency id cache")
		return err
	}
	defer idCache.Close()

	// Repositories
	rateRepo := postgres.NewExchangeRateRepository(pool)
	weekendRepo := postgres.NewWeekendRepository(pool)

	// Metrics
	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(registry)

	// Services
	rateService := rate.NewService(rateRepo, weekendRepo, rateSource, idCache)
	rateValidator := rate.NewValidator()
	weekendService := weekend.NewService(weekendRepo)

	scheduler := weekend.NewScheduler(
		weekendRepo,
		appCfg.Scheduler.WeekendHorizonDays,
		time.Duration(appCfg.Scheduler.PopulateIntervalMinutes)*time.Minute,
	)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	rateHandler := ratehandler.NewRateHandler(rateValidator, rateService, appMetrics)
	weekendHandler := weekendhandler.NewWeekendHandler(weekendService)
	router := api.NewRouter(rateHandler, weekendHandler, registry)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
