package http

import (
	"fmt"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"taskboard/internal/adapter/database/postgres"
	pgrepo "taskboard/internal/adapter/database/postgres/repository"
	"taskboard/internal/adapter/database/sqlite"
	sqliterepo "taskboard/internal/adapter/database/sqlite/repository"
	"taskboard/internal/adapter/http/routes"
	"taskboard/internal/core/port"
	"taskboard/internal/core/telemetry"
	"taskboard/pkg/config"
)

// NewServer opens the configured store, wires the container, and returns the
// HTTP server plus a cleanup that releases the store handle. The caller runs
// the server and invokes cleanup on shutdown.
func NewServer(cfg config.Config, logger *otelzap.Logger, metrics *telemetry.AppMetrics, probe port.Telemetry) (*http.Server, func() error, error) {
	var todoRepo port.TodoRepository
	var closeStore func() error

	switch cfg.DB.Driver {
	case "postgres":
		db, err := postgres.Open(cfg.DB.URL, cfg.DB.MigrationsPath())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}

		todoRepo = pgrepo.NewTodoRepository(db, probe)
		closeStore = db.Close

	default:
		db, err := sqlite.Open(cfg.DB.Path, cfg.DB.MigrationsPath())
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}

		todoRepo = sqliterepo.NewTodoRepository(db, probe)
		closeStore = db.Close
	}

	container := NewContainer(todoRepo, probe, logger, metrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		TodoHandler: container.TodoHandler,
	}, metrics, logger, routes.RouterOptions{
		RateLimitEnabled: cfg.RateLimit.Enabled,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return srv, closeStore, nil
}
