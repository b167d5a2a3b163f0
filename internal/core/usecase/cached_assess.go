package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
	"github.com/tmabaso/legal-qa-core/internal/core/ports"
)

// CachedAssessUseCase wraps assessment with the response cache so identical
// (query, response) pairs are scored once per TTL window. Concurrent misses
// for the same pair are collapsed into a single scoring pass.
type CachedAssessUseCase struct {
	assessor ports.QualityAssessor
	cache    ports.ResponseCache
	group    singleflight.Group
}

func NewCachedAssessUseCase(assessor ports.QualityAssessor, cache ports.ResponseCache) *CachedAssessUseCase {
	return &CachedAssessUseCase{
		assessor: assessor,
		cache:    cache,
	}
}

func (uc *CachedAssessUseCase) Assess(ctx context.Context, query, response string, sources []domain.Source) domain.QualityAssessment {
	if payload, ok := uc.cache.Get(ctx, domain.CategoryQualityAssessment, query, response); ok {
		var cached domain.QualityAssessment
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached
		}
		slog.Warn("cached_assessment_unreadable", "error_kind", domain.ErrCorruptEntry)
	}

	result, _, _ := uc.group.Do(query+"\x1f"+response, func() (any, error) {
		assessment := uc.assessor.Assess(query, response, sources)
		uc.cache.Set(ctx, domain.CategoryQualityAssessment, assessment, query, response)
		return assessment, nil
	})
	return result.(domain.QualityAssessment)
}
