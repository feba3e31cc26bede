package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	DB        DBConfig
	Telemetry TelemetryConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"development"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Port         string        `env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
}

type DBConfig struct {
	// Driver selects the store backend: "sqlite" (default) or "postgres".
	Driver string `env:"DB_DRIVER" env-default:"sqlite"`
	Path   string `env:"DATABASE_PATH" env-default:"taskboard.db"`
	URL    string `env:"DATABASE_URL" env-default:""`
	// MigrationsDir overrides the per-driver default under db/migrations.
	MigrationsDir string `env:"MIGRATIONS_PATH" env-default:""`
}

type TelemetryConfig struct {
	Enabled      bool   `env:"TELEMETRY_ENABLED" env-default:"false"`
	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:"localhost:4317"`
	MetricsPort  string `env:"METRICS_PORT" env-default:"9091"`
}

type RateLimitConfig struct {
	Enabled bool `env:"RATE_LIMIT_ENABLED" env-default:"true"`
}

// MigrationsPath returns the migrations directory for the configured driver.
func (d DBConfig) MigrationsPath() string {
	if d.MigrationsDir != "" {
		return d.MigrationsDir
	}
	return filepath.Join("db", "migrations", d.Driver)
}

func Load() (Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	switch cfg.DB.Driver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", cfg.DB.Driver)
	}

	if cfg.DB.Driver == "postgres" && cfg.DB.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
	}

	return cfg, nil
}
