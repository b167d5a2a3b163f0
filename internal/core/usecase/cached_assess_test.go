package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

type assessorFake struct {
	calls int
}

func (f *assessorFake) Assess(query, response string, sources []domain.Source) domain.QualityAssessment {
	f.calls++
	return domain.QualityAssessment{
		OverallScore:             0.5,
		CitationAccuracy:         0.5,
		TerminologyScore:         0.5,
		RelevanceScore:           0.5,
		JurisdictionContextScore: 0.5,
		ConfidenceScore:          0.5,
	}
}

type cacheFake struct {
	store map[string]json.RawMessage
	sets  int
}

func newCacheFake() *cacheFake {
	return &cacheFake{store: make(map[string]json.RawMessage)}
}

func (f *cacheFake) key(category domain.CacheCategory, parts []string) string {
	key := string(category)
	for _, p := range parts {
		key += "|" + p
	}
	return key
}

func (f *cacheFake) Get(_ context.Context, category domain.CacheCategory, keyParts ...string) (json.RawMessage, bool) {
	payload, ok := f.store[f.key(category, keyParts)]
	return payload, ok
}

func (f *cacheFake) Set(_ context.Context, category domain.CacheCategory, value any, keyParts ...string) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		return false
	}
	f.store[f.key(category, keyParts)] = payload
	f.sets++
	return true
}

func (f *cacheFake) Clear(context.Context, domain.CacheCategory) domain.ClearResult {
	n := len(f.store)
	f.store = make(map[string]json.RawMessage)
	return domain.ClearResult{MemoryRemoved: n}
}

func (f *cacheFake) Stats() domain.CacheStats { return domain.CacheStats{} }

func (f *cacheFake) Optimize(context.Context) domain.OptimizeResult { return domain.OptimizeResult{} }

func TestCachedAssessScoresOncePerPair(t *testing.T) {
	assessor := &assessorFake{}
	cache := newCacheFake()
	uc := NewCachedAssessUseCase(assessor, cache)

	first := uc.Assess(context.Background(), "q", "r", nil)
	second := uc.Assess(context.Background(), "q", "r", nil)

	if assessor.calls != 1 {
		t.Fatalf("expected a single scoring pass, got %d", assessor.calls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected a single cache write, got %d", cache.sets)
	}
	if first.OverallScore != second.OverallScore {
		t.Fatalf("expected identical cached result, got %.2f and %.2f", first.OverallScore, second.OverallScore)
	}
}

func TestCachedAssessDistinguishesPairs(t *testing.T) {
	assessor := &assessorFake{}
	uc := NewCachedAssessUseCase(assessor, newCacheFake())

	uc.Assess(context.Background(), "q1", "r", nil)
	uc.Assess(context.Background(), "q2", "r", nil)

	if assessor.calls != 2 {
		t.Fatalf("expected two scoring passes for distinct queries, got %d", assessor.calls)
	}
}
