package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QA_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()

	if cfg.Service != "legal-qa" {
		t.Fatalf("unexpected service default: %q", cfg.Service)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level default: %q", cfg.LogLevel)
	}
	if cfg.CacheDir != "./data/cache" {
		t.Fatalf("unexpected cache dir default: %q", cfg.CacheDir)
	}
	if cfg.CacheMemoryBudgetBytes != 64<<20 {
		t.Fatalf("unexpected memory budget default: %d", cfg.CacheMemoryBudgetBytes)
	}
	if cfg.OptimizeSchedule != "@every 10m" {
		t.Fatalf("unexpected optimize schedule default: %q", cfg.OptimizeSchedule)
	}
	if cfg.WorkerMetricsPort != "9090" {
		t.Fatalf("unexpected metrics port default: %q", cfg.WorkerMetricsPort)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log_level: "debug"
cache_dir: "/tmp/yaml-cache"
cache_memory_budget_bytes: 1048576
cache_ttl_seconds:
  legal_query: 120
citation_density_min: 0.001
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("QA_CONFIG_PATH", path)
	t.Setenv("CACHE_DIR", "/tmp/env-cache")
	t.Setenv("CACHE_TTL_VECTOR_SEARCH_SECONDS", "45")

	cfg := Load()

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected yaml log level, got %q", cfg.LogLevel)
	}
	if cfg.CacheDir != "/tmp/env-cache" {
		t.Fatalf("expected env to win over yaml, got %q", cfg.CacheDir)
	}
	if cfg.CacheMemoryBudgetBytes != 1<<20 {
		t.Fatalf("expected yaml memory budget, got %d", cfg.CacheMemoryBudgetBytes)
	}
	if cfg.CitationDensityMin != 0.001 {
		t.Fatalf("expected yaml density min, got %g", cfg.CitationDensityMin)
	}

	ttl := cfg.TTLByCategory()
	if ttl[domain.CategoryLegalQuery] != 120*time.Second {
		t.Fatalf("expected yaml TTL override, got %v", ttl[domain.CategoryLegalQuery])
	}
	if ttl[domain.CategoryVectorSearch] != 45*time.Second {
		t.Fatalf("expected env TTL override, got %v", ttl[domain.CategoryVectorSearch])
	}
	if ttl[domain.CategoryDocumentContent] != 7200*time.Second {
		t.Fatalf("expected default TTL preserved, got %v", ttl[domain.CategoryDocumentContent])
	}
}

func TestTTLByCategoryIgnoresNonPositiveOverrides(t *testing.T) {
	cfg := Config{CacheTTLSeconds: map[string]int{string(domain.CategoryLegalQuery): 0}}
	ttl := cfg.TTLByCategory()
	if ttl[domain.CategoryLegalQuery] != 3600*time.Second {
		t.Fatalf("expected default TTL kept for zero override, got %v", ttl[domain.CategoryLegalQuery])
	}
}
