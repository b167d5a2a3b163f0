package legaltext

import (
	"regexp"
	"strings"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

const contextRadius = 50

// Parser recognizes South African citation formats and legal terminology.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	buckets []compiledBucket
}

type compiledBucket struct {
	docType  domain.DocumentType
	keywords []string
	patterns []*regexp.Regexp
}

func NewParser() *Parser {
	buckets := make([]compiledBucket, 0, len(documentBuckets))
	for _, b := range documentBuckets {
		compiled := compiledBucket{
			docType:  domain.DocumentType(b.docType),
			keywords: b.keywords,
		}
		for _, p := range b.patterns {
			compiled.patterns = append(compiled.patterns, regexp.MustCompile(p))
		}
		buckets = append(buckets, compiled)
	}
	return &Parser{buckets: buckets}
}

// ExtractCitations applies every rule in the citation table, in table order,
// and deduplicates matches by exact text preserving first-seen order.
// Overlapping matches of different rules have distinct matched texts and are
// all kept: the scorer treats each interpretation independently.
func (p *Parser) ExtractCitations(text string) []domain.Citation {
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []domain.Citation
	for _, rule := range citationRules {
		for _, loc := range rule.pattern.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			if _, dup := seen[matched]; dup {
				continue
			}
			seen[matched] = struct{}{}

			citation := domain.Citation{
				Text:    matched,
				Type:    rule.citationType,
				Court:   authorityByType[rule.citationType],
				Context: surrounding(text, loc[0], loc[1]),
			}
			if year := yearPattern.FindString(matched); year != "" {
				citation.Year = atoiYear(year)
			}
			out = append(out, citation)
		}
	}
	return out
}

// ExtractLegalTerms scans the fixed vocabulary case-insensitively and returns
// every term present as a substring, in vocabulary declaration order.
func (p *Parser) ExtractLegalTerms(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var out []string
	for _, term := range legalTerms {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

// ScanRegister reports formal-register and casual-register phrase hits, each
// in declaration order.
func (p *Parser) ScanRegister(text string) ([]string, []string) {
	if text == "" {
		return nil, nil
	}
	lower := strings.ToLower(text)
	var formal, casual []string
	for _, phrase := range formalPhrases {
		if strings.Contains(lower, phrase) {
			formal = append(formal, phrase)
		}
	}
	for _, phrase := range casualPhrases {
		if strings.Contains(lower, phrase) {
			casual = append(casual, phrase)
		}
	}
	return formal, casual
}

func (p *Parser) MatchesCitationPattern(text string) bool {
	for _, rule := range citationRules {
		if rule.pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func (p *Parser) Authority(citationType domain.CitationType) (string, bool) {
	name, ok := authorityByType[citationType]
	return name, ok
}

// ClassifyDocumentType scores each document bucket by keyword hits (1.0) and
// pattern hits (2.0), normalized by max(wordCount/100, 1) so long documents
// are not unfairly advantaged, and picks the argmax. Confidence below 0.1
// collapses to unknown.
func (p *Parser) ClassifyDocumentType(text string) (domain.DocumentType, float64) {
	if strings.TrimSpace(text) == "" {
		return domain.DocumentUnknown, 0
	}
	lower := strings.ToLower(text)

	norm := float64(len(strings.Fields(text))) / 100.0
	if norm < 1 {
		norm = 1
	}

	best := domain.DocumentUnknown
	bestScore := 0.0
	for _, bucket := range p.buckets {
		score := 0.0
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				score += 1.0
			}
		}
		for _, pattern := range bucket.patterns {
			if pattern.MatchString(text) {
				score += 2.0
			}
		}
		score /= norm
		if score > bestScore {
			bestScore = score
			best = bucket.docType
		}
	}

	if bestScore < 0.1 {
		return domain.DocumentUnknown, 0
	}
	return best, bestScore
}

func surrounding(text string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

func atoiYear(s string) int {
	year := 0
	for _, r := range s {
		year = year*10 + int(r-'0')
	}
	return year
}
