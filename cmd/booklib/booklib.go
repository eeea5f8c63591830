package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booklib/internal/api"
	"booklib/internal/config"
	"booklib/internal/library"
	"booklib/internal/logger"
	"booklib/internal/models"
	"booklib/internal/observability"
	"booklib/internal/ratelimit"
	"booklib/internal/storage"
	"booklib/internal/validation"
	"booklib/internal/version"
)

var (
	configFile  = flag.String("config", "", "Path to configuration file")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	ver := version.GetInfo()
	if *showVersion {
		fmt.Println(ver.String())
		return
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize structured logging
	log, closer, err := logger.Setup(cfg.Logging, ver)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}
	slog.SetDefault(log)

	// Initialize observability (OpenTelemetry)
	otelProvider, err := observability.Setup(cfg.Metrics, cfg.Observability, ver)
	if err != nil {
		slog.Error("Failed to initialize observability", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelProvider.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown observability", "error", err)
		}
	}()

	// Initialize storage
	memStore := storage.NewMemoryStore()
	defer memStore.Close()

	// Wrap storage with instrumentation if metrics are enabled
	var activeStore storage.Store = memStore
	if cfg.Metrics.Enabled {
		instrumented, err := observability.NewInstrumentedStore(memStore)
		if err != nil {
			slog.Error("Failed to create instrumented storage", "error", err)
			os.Exit(1)
		}
		activeStore = instrumented
	}

	if cfg.Storage.Seed {
		if err := storage.Seed(context.Background(), activeStore); err != nil {
			slog.Error("Failed to seed sample catalog", "error", err)
			os.Exit(1)
		}
		slog.Info("Sample catalog seeded")
	}

	// Initialize validation and the library service
	validator, err := validation.New()
	if err != nil {
		slog.Error("Failed to initialize validator", "error", err)
		os.Exit(1)
	}
	service := library.NewService(activeStore, validator)

	handlers := api.NewHandlers(service, ver.Version)

	// Setup routes with middleware
	routeOpts := []api.RouteOption{}
	if cfg.Observability.Tracing.Enabled {
		routeOpts = append(routeOpts, api.WithOTelMiddleware(cfg.Observability.ServiceName))
	}

	// Initialize rate limiter if enabled
	if cfg.RateLimit.Enabled {
		limiter, err := newLimiter(cfg.RateLimit)
		if err != nil {
			slog.Error("Failed to initialize rate limiter", "error", err)
			os.Exit(1)
		}
		defer limiter.Close()

		slog.Info("Rate limiting enabled",
			"strategy", cfg.RateLimit.Strategy,
			"window", cfg.RateLimit.Window,
			"max_requests", cfg.RateLimit.MaxRequests)

		routeOpts = append(routeOpts, api.WithRateLimiter(ratelimit.Middleware(limiter, time.Now)))
	}

	router := api.SetupRoutes(handlers, cfg, routeOpts...)

	// Start metrics server if enabled
	var metricsServer *observability.MetricsServer
	if cfg.Metrics.Enabled {
		metricsServer = observability.NewMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path, otelProvider)
		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			slog.Error("Metrics server forced to shutdown", "error", err)
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server shutdown complete")
}

// newLimiter creates the configured rate limiting strategy.
func newLimiter(cfg models.RateLimitConfig) (ratelimit.Limiter, error) {
	switch cfg.Strategy {
	case models.RateLimitStrategySlidingWindow:
		return ratelimit.NewSlidingWindowLimiter(cfg.Window, cfg.MaxRequests, cfg.CleanupInterval), nil
	case models.RateLimitStrategyTokenBucket:
		return ratelimit.NewTokenBucketLimiter(cfg.Window, cfg.MaxRequests, cfg.BurstSize, cfg.CleanupInterval), nil
	default:
		return nil, fmt.Errorf("unsupported rate limit strategy: %s", cfg.Strategy)
	}
}
