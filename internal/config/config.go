package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

type Config struct {
	Service  string `yaml:"service"`
	LogLevel string `yaml:"log_level"`

	CacheDir               string `yaml:"cache_dir"`
	CacheMemoryBudgetBytes int64  `yaml:"cache_memory_budget_bytes"`
	CacheWriteQueueSize    int    `yaml:"cache_write_queue_size"`

	// CacheTTLSeconds overrides the per-category defaults. Keys are
	// category names (legal_query, vector_search, ...).
	CacheTTLSeconds map[string]int `yaml:"cache_ttl_seconds"`

	CitationDensityMin float64 `yaml:"citation_density_min"`
	CitationDensityMax float64 `yaml:"citation_density_max"`

	OptimizeSchedule  string `yaml:"optimize_schedule"`
	WorkerMetricsPort string `yaml:"worker_metrics_port"`
}

// Load reads the optional YAML file at QA_CONFIG_PATH, applies env
// overrides on top, then fills defaults. A missing file is fine; a file
// that exists but fails to parse is not.
func Load() Config {
	var cfg Config

	path := mustEnv("QA_CONFIG_PATH", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			slog.Error("config_parse_failed", "path", path, "error", err)
			os.Exit(1)
		}
	}

	cfg.Service = mustEnv("QA_SERVICE", cfg.Service)
	cfg.LogLevel = mustEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.CacheDir = mustEnv("CACHE_DIR", cfg.CacheDir)
	cfg.CacheMemoryBudgetBytes = mustEnvInt64("CACHE_MEMORY_BUDGET_BYTES", cfg.CacheMemoryBudgetBytes)
	cfg.CacheWriteQueueSize = mustEnvInt("CACHE_WRITE_QUEUE_SIZE", cfg.CacheWriteQueueSize)
	cfg.CitationDensityMin = mustEnvFloat("CITATION_DENSITY_MIN", cfg.CitationDensityMin)
	cfg.CitationDensityMax = mustEnvFloat("CITATION_DENSITY_MAX", cfg.CitationDensityMax)
	cfg.OptimizeSchedule = mustEnv("CACHE_OPTIMIZE_SCHEDULE", cfg.OptimizeSchedule)
	cfg.WorkerMetricsPort = mustEnv("WORKER_METRICS_PORT", cfg.WorkerMetricsPort)

	for category, env := range ttlEnvByCategory {
		if v := os.Getenv(env); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if cfg.CacheTTLSeconds == nil {
					cfg.CacheTTLSeconds = make(map[string]int)
				}
				cfg.CacheTTLSeconds[category] = n
			}
		}
	}

	if cfg.Service == "" {
		cfg.Service = "legal-qa"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "./data/cache"
	}
	if cfg.CacheMemoryBudgetBytes <= 0 {
		cfg.CacheMemoryBudgetBytes = 64 << 20
	}
	if cfg.OptimizeSchedule == "" {
		cfg.OptimizeSchedule = "@every 10m"
	}
	if cfg.WorkerMetricsPort == "" {
		cfg.WorkerMetricsPort = "9090"
	}

	return cfg
}

var ttlEnvByCategory = map[string]string{
	string(domain.CategoryLegalQuery):        "CACHE_TTL_LEGAL_QUERY_SECONDS",
	string(domain.CategoryVectorSearch):      "CACHE_TTL_VECTOR_SEARCH_SECONDS",
	string(domain.CategoryDocumentContent):   "CACHE_TTL_DOCUMENT_CONTENT_SECONDS",
	string(domain.CategoryQualityAssessment): "CACHE_TTL_QUALITY_ASSESSMENT_SECONDS",
	string(domain.CategoryUserSession):       "CACHE_TTL_USER_SESSION_SECONDS",
}

// TTLByCategory merges the configured overrides over the category defaults.
func (c Config) TTLByCategory() map[domain.CacheCategory]time.Duration {
	ttl := domain.DefaultTTLByCategory()
	for name, seconds := range c.CacheTTLSeconds {
		if seconds <= 0 {
			continue
		}
		ttl[domain.CacheCategory(name)] = time.Duration(seconds) * time.Second
	}
	return ttl
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
