package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/orggraph-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "PORT", "GRAPH_PRESETS_FILE", "GRAPH_DEFAULT_MAX_NODES", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadConfig(testLogger(t))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DBDriver != "postgres" || cfg.Port != "8080" {
		t.Fatalf("defaults: driver=%q port=%q", cfg.DBDriver, cfg.Port)
	}
	if cfg.Graph.Defaults.MaxNodes != 2000 || cfg.Graph.Defaults.MaxEdges != 4000 || cfg.Graph.Defaults.Degrees != 1 {
		t.Fatalf("graph defaults: got=%+v", cfg.Graph.Defaults)
	}
	if len(cfg.Graph.Presets) != 4 {
		t.Fatalf("presets: want=4 got=%d", len(cfg.Graph.Presets))
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Fatalf("cors origins: got=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte("presets:\n  triage:\n    degrees: 1\n    max_nodes: 30\n    max_edges: 60\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("GRAPH_PRESETS_FILE", path)
	t.Setenv("GRAPH_DEFAULT_MAX_NODES", "75")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg, err := LoadConfig(testLogger(t))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("driver: got=%q", cfg.DBDriver)
	}
	if cfg.Graph.Defaults.MaxNodes != 75 {
		t.Fatalf("max nodes: got=%d", cfg.Graph.Defaults.MaxNodes)
	}
	if cfg.Graph.Presets["triage"].MaxEdges != 60 {
		t.Fatalf("triage preset: got=%+v", cfg.Graph.Presets["triage"])
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("cors origins: got=%v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("GRAPH_PRESETS_FILE", "")
	if _, err := LoadConfig(testLogger(t)); err == nil {
		t.Fatalf("want error for unknown driver")
	}
}
