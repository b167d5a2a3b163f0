package usecase

import (
	"strings"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

const (
	noCitationBase   = 0.3
	densityBonus     = 0.1
	referralCredit   = 0.05
	maxSystemPhrases = 3
	maxConcepts      = 3
	maxAuthorityHits = 2
)

// scoreCitationAccuracy validates each extracted citation: it must match a
// known format, resolve to a recognized authority, and — when sources were
// supplied — appear verbatim in at least one source. Zero citations is a
// penalty, not a neutral: legal responses are expected to cite.
func (uc *AssessResponseUseCase) scoreCitationAccuracy(citations []domain.Citation, sources []domain.Source, responseLen int) (float64, []string) {
	if len(citations) == 0 {
		return noCitationBase, nil
	}

	var validated []string
	for _, c := range citations {
		if !uc.parser.MatchesCitationPattern(c.Text) {
			continue
		}
		if _, ok := uc.parser.Authority(c.Type); !ok {
			continue
		}
		if len(sources) > 0 && !citedBySources(c.Text, sources) {
			continue
		}
		validated = append(validated, c.Text)
	}

	score := float64(len(validated)) / float64(len(citations))
	if responseLen > 0 {
		density := float64(len(citations)) / float64(responseLen)
		if density >= uc.rubric.DensityMin && density <= uc.rubric.DensityMax {
			score += densityBonus
		}
	}
	return clamp01(score), validated
}

func citedBySources(text string, sources []domain.Source) bool {
	for _, s := range sources {
		if strings.Contains(s.Content, text) || strings.Contains(s.Title, text) {
			return true
		}
	}
	return false
}

// scoreJurisdictionContext rewards explicit grounding in the South African
// legal system: system-identifying phrases, SA-specific doctrine, citations
// resolving to recognized authorities, and a professional referral.
func (uc *AssessResponseUseCase) scoreJurisdictionContext(response string, citations []domain.Citation) float64 {
	lower := strings.ToLower(response)

	phrases := 0
	for _, p := range saSystemPhrases {
		if strings.Contains(lower, p) {
			phrases++
		}
	}
	if phrases > maxSystemPhrases {
		phrases = maxSystemPhrases
	}

	concepts := 0
	for _, c := range saLegalConcepts {
		if strings.Contains(lower, c) {
			concepts++
		}
	}
	if concepts > maxConcepts {
		concepts = maxConcepts
	}

	authorities := 0
	for _, c := range citations {
		if _, ok := uc.parser.Authority(c.Type); ok {
			authorities++
		}
	}
	if authorities > maxAuthorityHits {
		authorities = maxAuthorityHits
	}

	score := 0.15*float64(phrases) + 0.10*float64(concepts) + 0.10*float64(authorities)
	if containsAny(lower, referralPhrases) {
		score += referralCredit
	}
	return clamp01(score)
}

// scoreConfidence averages the supplied source similarities and adds small
// credits for source diversity and citation count.
func scoreConfidence(sources []domain.Source, citationCount int) float64 {
	score := 0.0
	if len(sources) > 0 {
		sum := 0.0
		for _, s := range sources {
			sum += s.SimilarityScore
		}
		score = sum / float64(len(sources))
	}

	sourceCredit := len(sources)
	if sourceCredit > 4 {
		sourceCredit = 4
	}
	citationCredit := citationCount
	if citationCredit > 4 {
		citationCredit = 4
	}
	score += 0.05*float64(sourceCredit) + 0.05*float64(citationCredit)
	return clamp01(score)
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
