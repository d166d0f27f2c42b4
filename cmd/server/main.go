package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/trolleywise/price-service/config"
	"github.com/trolleywise/price-service/internal/appstate"
	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/handlers"
	"github.com/trolleywise/price-service/internal/middleware"
	"github.com/trolleywise/price-service/internal/persistence"
	"github.com/trolleywise/price-service/internal/pricing"
	"github.com/trolleywise/price-service/internal/stores"
	"github.com/trolleywise/price-service/internal/telemetry"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting price comparison service")

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		Environment: cfg.Telemetry.Environment,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	persister, err := persistence.NewFileStore(cfg.Storage.BasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open persistence store")
	}

	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	roster := stores.Roster()
	products, err := catalog.GenerateParallel(ctx, seed, roster)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate catalog")
	}

	store := appstate.NewStore(persister, *logger)
	if err := store.Bootstrap(ctx, products); err != nil {
		logger.Fatal().Err(err).Msg("Failed to bootstrap state store")
	}

	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	if cfg.Generator.RefreshInterval > 0 {
		go runPriceRefresh(refreshCtx, store, cfg.Generator.RefreshInterval, logger)
	}

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", handlers.Health(persister))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	}))
	handlers.New(store, *logger).Register(api)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Telemetry shutdown failed")
	}

	logger.Info().Msg("Server exited")
}

// runPriceRefresh simulates intra-day price movement on a fixed cadence.
func runPriceRefresh(ctx context.Context, store *appstate.Store, interval time.Duration, logger *zerolog.Logger) {
	gen := pricing.NewDefaultGenerator()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			state := store.Snapshot()
			refreshed := make([]catalog.Product, len(state.Products))
			for i, p := range state.Products {
				p.Stores = gen.RefreshStorePrices(p.Stores)
				refreshed[i] = p
			}
			store.Dispatch(appstate.SetProducts{Products: refreshed})
			logger.Debug().Int("products", len(refreshed)).Msg("Refreshed prices")
		}
	}
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "trolleywise").Logger()
	return &logger
}
