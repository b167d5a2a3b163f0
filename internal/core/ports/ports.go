package ports

import (
	"context"
	"encoding/json"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

// LegalTextParser recognizes South African citations and legal terminology in
// free text. Implementations must be pure and safe for concurrent use.
type LegalTextParser interface {
	ExtractCitations(text string) []domain.Citation
	ExtractLegalTerms(text string) []string
	// ScanRegister returns the formal-register phrases and casual-register
	// phrases found in the text, each in declaration order, deduplicated.
	ScanRegister(text string) (formal []string, casual []string)
	MatchesCitationPattern(text string) bool
	Authority(citationType domain.CitationType) (string, bool)
	ClassifyDocumentType(text string) (domain.DocumentType, float64)
}

// QualityAssessor scores a generated response against the rubric. It never
// returns an error: failures degrade to a neutral assessment.
type QualityAssessor interface {
	Assess(query, response string, sources []domain.Source) domain.QualityAssessment
}

// ResponseCache is the two-tier query cache. Get distinguishes a miss (false)
// from a hit; internal failures degrade to a miss or a false Set result and
// are never surfaced as errors.
type ResponseCache interface {
	Get(ctx context.Context, category domain.CacheCategory, keyParts ...string) (json.RawMessage, bool)
	Set(ctx context.Context, category domain.CacheCategory, value any, keyParts ...string) bool
	Clear(ctx context.Context, category domain.CacheCategory) domain.ClearResult
	Stats() domain.CacheStats
	Optimize(ctx context.Context) domain.OptimizeResult
}
