package bootstrap

import (
	"fmt"

	"github.com/tmabaso/legal-qa-core/internal/config"
	"github.com/tmabaso/legal-qa-core/internal/core/domain"
	"github.com/tmabaso/legal-qa-core/internal/core/ports"
	"github.com/tmabaso/legal-qa-core/internal/core/usecase"
	"github.com/tmabaso/legal-qa-core/internal/infrastructure/cache"
	"github.com/tmabaso/legal-qa-core/internal/infrastructure/legaltext"
	"github.com/tmabaso/legal-qa-core/internal/infrastructure/resilience"
	"github.com/tmabaso/legal-qa-core/internal/observability/metrics"
)

// App wires the parser, scorer, and cache behind explicit constructor
// injection. Everything it owns is reachable from here; there are no
// package-level singletons.
type App struct {
	Config  config.Config
	Metrics *metrics.QAMetrics

	Parser   ports.LegalTextParser
	Cache    ports.ResponseCache
	AssessUC *usecase.CachedAssessUseCase

	cacheManager *cache.Manager
}

func New(cfg config.Config) (*App, error) {
	qaMetrics := metrics.NewQAMetrics(cfg.Service)
	executor := resilience.NewExecutor(resilience.DefaultConfig())

	cacheManager, err := cache.NewManager(cache.Options{
		Dir:                cfg.CacheDir,
		MemoryBudgetBytes:  cfg.CacheMemoryBudgetBytes,
		TTLByCategory:      cfg.TTLByCategory(),
		Executor:           executor,
		Metrics:            qaMetrics,
		Service:            cfg.Service,
		DiskWriteQueueSize: cfg.CacheWriteQueueSize,
	})
	if err != nil {
		return nil, fmt.Errorf("init response cache: %w", err)
	}

	parser := legaltext.NewParser()
	assessor := usecase.NewAssessResponseUseCase(parser, usecase.Rubric{
		DensityMin: cfg.CitationDensityMin,
		DensityMax: cfg.CitationDensityMax,
	})
	instrumented := &instrumentedAssessor{
		inner:   assessor,
		metrics: qaMetrics,
		service: cfg.Service,
	}
	assessUC := usecase.NewCachedAssessUseCase(instrumented, cacheManager)

	return &App{
		Config:       cfg,
		Metrics:      qaMetrics,
		Parser:       parser,
		Cache:        cacheManager,
		AssessUC:     assessUC,
		cacheManager: cacheManager,
	}, nil
}

// Close drains the cache's pending disk writes.
func (a *App) Close() {
	a.cacheManager.Close()
}

// instrumentedAssessor records a metric per real scoring pass. Cache hits
// bypass it, so the assessment histogram counts fresh scores only.
type instrumentedAssessor struct {
	inner   ports.QualityAssessor
	metrics *metrics.QAMetrics
	service string
}

func (ia *instrumentedAssessor) Assess(query, response string, sources []domain.Source) domain.QualityAssessment {
	assessment := ia.inner.Assess(query, response, sources)
	ia.metrics.AssessmentScored(ia.service, assessment.OverallScore, usecase.IsDegraded(assessment))
	return assessment
}
