package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/orggraph-backend/internal/data/db"
	"github.com/yungbote/orggraph-backend/internal/observability"
	"github.com/yungbote/orggraph-backend/internal/platform/envutil"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
	"github.com/yungbote/orggraph-backend/internal/services"
)

const serviceName = "orggraph-backend"

type Config struct {
	Port        string
	DBDriver    string
	SQLitePath  string
	Postgres    db.PostgresConfig
	CORSOrigins []string
	Graph       services.GraphConfig
	Otel        observability.OtelConfig
}

func LoadConfig(log *logger.Logger) (Config, error) {
	presetsFile := envutil.String("GRAPH_PRESETS_FILE", "")
	presets, err := services.LoadPresets(presetsFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:       envutil.String("PORT", "8080"),
		DBDriver:   strings.ToLower(envutil.String("DB_DRIVER", "postgres")),
		SQLitePath: envutil.String("SQLITE_PATH", ""),
		Postgres: db.PostgresConfig{
			Host:     envutil.String("POSTGRES_HOST", "localhost"),
			Port:     envutil.String("POSTGRES_PORT", "5432"),
			User:     envutil.String("POSTGRES_USER", "postgres"),
			Password: envutil.String("POSTGRES_PASSWORD", ""),
			Name:     envutil.String("POSTGRES_NAME", "orggraph"),
		},
		CORSOrigins: splitCSV(envutil.String("CORS_ALLOWED_ORIGINS", "")),
		Graph: services.GraphConfig{
			Defaults: services.Budget{
				Degrees:  envutil.Int("GRAPH_DEFAULT_DEGREES", services.DefaultBudget().Degrees),
				MaxNodes: envutil.Int("GRAPH_DEFAULT_MAX_NODES", services.DefaultBudget().MaxNodes),
				MaxEdges: envutil.Int("GRAPH_DEFAULT_MAX_EDGES", services.DefaultBudget().MaxEdges),
			},
			EgoMaxNeighbors: envutil.Int("GRAPH_EGO_MAX_NEIGHBORS", 50),
			Presets:         presets,
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName),
			Environment: envutil.String("APP_ENV", "development"),
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1),
		},
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return Config{}, fmt.Errorf("DB_DRIVER %q: want postgres or sqlite", cfg.DBDriver)
	}
	if b := cfg.Graph.Defaults; b.Degrees < 0 || b.MaxNodes < 0 || b.MaxEdges < 0 {
		return Config{}, fmt.Errorf("graph defaults must be non-negative: %+v", b)
	}

	log.Info("config loaded",
		"db_driver", cfg.DBDriver,
		"port", cfg.Port,
		"presets", len(presets),
		"presets_file", presetsFile,
		"otel_enabled", cfg.Otel.Enabled,
	)
	return cfg, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
