package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	adapterhttp "taskboard/internal/adapter/http"
	adaptertel "taskboard/internal/adapter/telemetry"
	"taskboard/internal/core/port"
	coretel "taskboard/internal/core/telemetry"
	"taskboard/pkg/config"
	"taskboard/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := logging.New(cfg.App.Env)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	var metrics *coretel.AppMetrics
	var probe port.Telemetry = coretel.NewNoOpProbe()

	if cfg.Telemetry.Enabled {
		telContainer, err := adaptertel.NewContainer(adaptertel.Config{
			ServiceName:    "taskboard",
			ServiceVersion: cfg.App.Version,
			Environment:    cfg.App.Env,
			MetricsPort:    cfg.Telemetry.MetricsPort,
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		}, slog.Default())

		if err != nil {
			log.Fatal("Failed to initialize telemetry:", err)
		}

		defer telContainer.Shutdown(context.Background())

		metrics = telContainer.AppMetrics
		metrics.StartSystemMetrics(ctx)
		probe = coretel.NewOTELProbe(slog.Default())
	}

	srv, closeStore, err := adapterhttp.NewServer(cfg, logger, metrics, probe)

	if err != nil {
		log.Fatal("Failed to initialize server:", err)
	}

	defer closeStore()

	go func() {
		slog.Info("Server starting",
			"port", cfg.HTTP.Port,
			"environment", cfg.App.Env,
			"db_driver", cfg.DB.Driver,
			"rate_limit_enabled", cfg.RateLimit.Enabled,
			"telemetry_enabled", cfg.Telemetry.Enabled)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
