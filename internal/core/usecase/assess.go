package usecase

import (
	"log/slog"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
	"github.com/tmabaso/legal-qa-core/internal/core/ports"
)

const maxReportedTerms = 10

// AssessResponseUseCase scores a generated legal response against the
// rubric. Scoring is deterministic over its inputs: no randomness and no
// calls beyond the parser. The use case never fails past its boundary —
// any scoring failure degrades to a neutral assessment.
type AssessResponseUseCase struct {
	parser ports.LegalTextParser
	rubric Rubric
}

func NewAssessResponseUseCase(parser ports.LegalTextParser, rubric Rubric) *AssessResponseUseCase {
	return &AssessResponseUseCase{
		parser: parser,
		rubric: rubric.normalize(),
	}
}

func (uc *AssessResponseUseCase) Assess(query, response string, sources []domain.Source) (assessment domain.QualityAssessment) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("quality_assessment_failed", "reason", r, "query_len", len(query), "response_len", len(response))
			assessment = degradedAssessment()
		}
	}()

	citations := uc.parser.ExtractCitations(response)
	terms := uc.parser.ExtractLegalTerms(response)
	formal, casual := uc.parser.ScanRegister(response)

	citationScore, validated := uc.scoreCitationAccuracy(citations, sources, len(response))
	terminologyScore := scoreTerminology(terms, formal, casual)
	relevanceScore := scoreRelevance(query, response)
	jurisdictionScore := uc.scoreJurisdictionContext(response, citations)
	confidenceScore := scoreConfidence(sources, len(citations))

	overall := domain.WeightedOverall(citationScore, terminologyScore, relevanceScore, jurisdictionScore, confidenceScore)

	assessment = domain.QualityAssessment{
		OverallScore:             overall,
		CitationAccuracy:         citationScore,
		TerminologyScore:         terminologyScore,
		RelevanceScore:           relevanceScore,
		JurisdictionContextScore: jurisdictionScore,
		ConfidenceScore:          confidenceScore,
		ValidatedCitations:       validated,
		LegalTermsFound:          topTerms(terms),
	}
	assessment.Issues = collectIssues(assessment, query, response)
	assessment.Recommendations = recommendFor(assessment.Issues)
	return assessment
}

// degradedAssessment is the fail-soft result: a neutral 0.5 on every signal
// so the weighted invariant still holds, plus a single explanatory issue.
func degradedAssessment() domain.QualityAssessment {
	return domain.QualityAssessment{
		OverallScore:             0.5,
		CitationAccuracy:         0.5,
		TerminologyScore:         0.5,
		RelevanceScore:           0.5,
		JurisdictionContextScore: 0.5,
		ConfidenceScore:          0.5,
		Issues:                   []string{issueAssessmentFailed},
	}
}

func topTerms(terms []string) []string {
	if len(terms) <= maxReportedTerms {
		return terms
	}
	return terms[:maxReportedTerms]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
