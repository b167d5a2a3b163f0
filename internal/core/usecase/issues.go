package usecase

import (
	"strings"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

const (
	issueLowOverall            = "overall quality below acceptable threshold"
	issueInsufficientCitations = "insufficient citations: legal responses should cite authority"
	issueWeakTerminology       = "low use of formal legal terminology"
	issueLowRelevance          = "response does not directly address the query"
	issueWeakJurisdiction      = "weak grounding in south african law"
	issueUnderminedAuthority   = "response disclaims its own legal authority"
	issueTooBrief              = "response too brief for the query's complexity"
	issueExternalSearch        = "response defers to an external search"
	issueAssessmentFailed      = "quality assessment failed; neutral score assigned"
)

const (
	overallThreshold      = 0.6
	citationThreshold     = 0.5
	terminologyThreshold  = 0.6
	relevanceThreshold    = 0.7
	jurisdictionThreshold = 0.5
	briefResponseChars    = 100
)

// recommendations is a fixed issue-to-advice mapping; output is always
// deterministic, never generated text.
var recommendations = map[string]string{
	issueLowOverall:            "review the response against the full scoring rubric before sending",
	issueInsufficientCitations: "cite relevant case law, statutes, or constitutional provisions",
	issueWeakTerminology:       "use formal south african legal terminology where appropriate",
	issueLowRelevance:          "address the question directly before expanding on context",
	issueWeakJurisdiction:      "frame the answer within south african law and name the governing authority",
	issueUnderminedAuthority:   "replace self-disqualifying language with a professional-referral disclaimer",
	issueTooBrief:              "expand the response to cover the relevant legal grounds",
	issueExternalSearch:        "answer from the retrieved sources instead of deferring to a search",
}

// IsDegraded reports whether the assessment came from the failure fallback
// rather than a real scoring pass.
func IsDegraded(a domain.QualityAssessment) bool {
	for _, issue := range a.Issues {
		if issue == issueAssessmentFailed {
			return true
		}
	}
	return false
}

func collectIssues(a domain.QualityAssessment, query, response string) []string {
	var issues []string

	if a.OverallScore < overallThreshold {
		issues = append(issues, issueLowOverall)
	}
	if a.CitationAccuracy < citationThreshold {
		issues = append(issues, issueInsufficientCitations)
	}
	if a.TerminologyScore < terminologyThreshold {
		issues = append(issues, issueWeakTerminology)
	}
	if a.RelevanceScore < relevanceThreshold {
		issues = append(issues, issueLowRelevance)
	}
	if a.JurisdictionContextScore < jurisdictionThreshold {
		issues = append(issues, issueWeakJurisdiction)
	}

	lower := strings.ToLower(response)
	if containsAny(lower, underminingPhrases) {
		issues = append(issues, issueUnderminedAuthority)
	}
	if len(response) < briefResponseChars && queryImpliesComplexity(query) {
		issues = append(issues, issueTooBrief)
	}
	if containsAny(lower, externalSearchPhrases) {
		issues = append(issues, issueExternalSearch)
	}

	return issues
}

func recommendFor(issues []string) []string {
	var out []string
	for _, issue := range issues {
		if advice, ok := recommendations[issue]; ok {
			out = append(out, advice)
		}
	}
	return out
}
