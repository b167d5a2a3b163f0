package usecase

import (
	"strings"
	"unicode"
)

const (
	noTermsFloor        = 0.4
	termCredit          = 0.1
	termCreditCap       = 0.6
	formalCredit        = 0.05
	formalCreditCap     = 0.2
	casualPenalty       = 0.1
	answeredBonus       = 0.2
	patternCredit       = 0.05
	patternCreditCap    = 0.15
	complexityMinTokens = 5
)

// scoreTerminology rewards domain vocabulary and formal register and
// penalizes hedging. Zero legal terms floors at 0.4 rather than 0: a short
// correct answer should not auto-fail.
//
// The scan covers the full response including quoted text, so quoting a
// client's casual question back can penalize the response. The source rubric
// does not disambiguate this; the behavior is kept as-is.
func scoreTerminology(terms, formal, casual []string) float64 {
	score := 0.0
	if len(terms) == 0 {
		score = noTermsFloor
	} else {
		score = termCredit * float64(len(terms))
		if score > termCreditCap {
			score = termCreditCap
		}
	}

	formalScore := formalCredit * float64(len(formal))
	if formalScore > formalCreditCap {
		formalScore = formalCreditCap
	}
	score += formalScore
	score -= casualPenalty * float64(len(casual))

	return clamp01(score)
}

// scoreRelevance measures query-token coverage of the response, with credit
// for actually answering an interrogative query and for sounding like a
// legal answer when the query is legal in nature.
func scoreRelevance(query, response string) float64 {
	queryTokens := toTokenSet(query)
	responseTokens := toTokenSet(response)

	score := tokenOverlap(queryTokens, responseTokens)

	if hasInterrogative(query) && containsAny(strings.ToLower(response), answerSignals) {
		score += answeredBonus
	}

	if isLegalQuery(query) {
		hits := 0
		for _, p := range legalResponsePatterns {
			if p.MatchString(response) {
				hits++
			}
		}
		credit := patternCredit * float64(hits)
		if credit > patternCreditCap {
			credit = patternCreditCap
		}
		score += credit
	}

	return clamp01(score)
}

func hasInterrogative(query string) bool {
	tokens := toTokenSet(query)
	for _, w := range interrogatives {
		if _, ok := tokens[w]; ok {
			return true
		}
	}
	return false
}

func isLegalQuery(query string) bool {
	tokens := toTokenSet(query)
	for _, w := range legalQueryKeywords {
		if _, ok := tokens[w]; ok {
			return true
		}
	}
	return false
}

func queryImpliesComplexity(query string) bool {
	return hasInterrogative(query) || len(toTokenSet(query)) >= complexityMinTokens
}

func tokenOverlap(query, response map[string]struct{}) float64 {
	if len(query) == 0 || len(response) == 0 {
		return 0
	}
	matches := 0
	for token := range query {
		if _, ok := response[token]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(query))
}

func toTokenSet(s string) map[string]struct{} {
	tokens := splitAlphaNumLower(s)
	out := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		out[token] = struct{}{}
	}
	return out
}

func splitAlphaNumLower(s string) []string {
	if s == "" {
		return nil
	}

	tokens := make([]string, 0, 16)
	var b strings.Builder
	for _, r := range s {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}
