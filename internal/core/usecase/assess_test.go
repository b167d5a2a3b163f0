package usecase

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
	"github.com/tmabaso/legal-qa-core/internal/infrastructure/legaltext"
)

const expressionQuery = "What are my rights to freedom of expression?"

const expressionResponse = "In terms of section 16 of the Constitution of the Republic of South Africa, 1996, " +
	"every person has the right to freedom of expression under South African law. The Constitutional Court " +
	"held in [2021] ZACC 13 that this right is central to the Bill of Rights. This means your rights to " +
	"freedom of expression are protected, subject to the limitations analysis in section 36. For advice on " +
	"your own circumstances you should consult a qualified attorney."

func expressionSources() []domain.Source {
	return []domain.Source{
		{
			Content:         "The Constitutional Court confirmed in [2021] ZACC 13 the centrality of expression.",
			Title:           "Freedom of expression judgment",
			SimilarityScore: 0.86,
			Jurisdiction:    "ZA",
		},
		{
			Content:         "Section 16 of the Constitution protects freedom of expression.",
			Title:           "Constitutional commentary",
			SimilarityScore: 0.78,
			Jurisdiction:    "ZA",
		},
	}
}

func newAssessor() *AssessResponseUseCase {
	return NewAssessResponseUseCase(legaltext.NewParser(), DefaultRubric())
}

func TestAssessIsDeterministic(t *testing.T) {
	uc := newAssessor()
	sources := expressionSources()

	first := uc.Assess(expressionQuery, expressionResponse, sources)
	second := uc.Assess(expressionQuery, expressionResponse, sources)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical assessments, got\n%+v\n%+v", first, second)
	}
}

func TestAssessOverallIsAlwaysWeightedSum(t *testing.T) {
	uc := newAssessor()

	cases := []struct {
		name     string
		query    string
		response string
		sources  []domain.Source
	}{
		{"well formed", expressionQuery, expressionResponse, expressionSources()},
		{"bare response", "Can my landlord evict me without a court order?", "No.", nil},
		{"empty response", "What is delict?", "", nil},
	}

	for _, tc := range cases {
		a := uc.Assess(tc.query, tc.response, tc.sources)
		want := domain.WeightedOverall(a.CitationAccuracy, a.TerminologyScore, a.RelevanceScore, a.JurisdictionContextScore, a.ConfidenceScore)
		if math.Abs(a.OverallScore-want) > 1e-9 {
			t.Fatalf("%s: overall %.6f != weighted sum %.6f", tc.name, a.OverallScore, want)
		}
	}
}

func TestAssessWellGroundedConstitutionalAnswer(t *testing.T) {
	uc := newAssessor()

	a := uc.Assess(expressionQuery, expressionResponse, expressionSources())
	if a.JurisdictionContextScore < 0.5 {
		t.Fatalf("expected jurisdiction context >= 0.5, got %.2f", a.JurisdictionContextScore)
	}
	if a.OverallScore < 0.7 {
		t.Fatalf("expected overall >= 0.7, got %.2f", a.OverallScore)
	}
	if len(a.ValidatedCitations) != 1 || a.ValidatedCitations[0] != "[2021] ZACC 13" {
		t.Fatalf("expected the ZACC citation validated, got %v", a.ValidatedCitations)
	}
}

func TestAssessBriefUncitedResponse(t *testing.T) {
	uc := newAssessor()

	query := "What are the requirements for a valid will in South Africa?"
	response := "You should write it down and sign it."

	a := uc.Assess(query, response, nil)
	if a.CitationAccuracy != 0.3 {
		t.Fatalf("expected citation accuracy 0.3 for zero citations, got %.2f", a.CitationAccuracy)
	}
	if a.TerminologyScore != 0.4 {
		t.Fatalf("expected terminology floor 0.4 for zero legal terms, got %.2f", a.TerminologyScore)
	}
	assertIssueContaining(t, a.Issues, "insufficient citations")
	assertIssueContaining(t, a.Issues, "response too brief")
}

func TestAssessDropsCitationsAbsentFromSources(t *testing.T) {
	uc := newAssessor()

	response := "The Companies Act 71 of 2008 governs director duties in terms of the common law."
	sources := []domain.Source{{Content: "An unrelated source about lease agreements.", SimilarityScore: 0.4}}

	a := uc.Assess("What governs director duties?", response, sources)
	if len(a.ValidatedCitations) != 0 {
		t.Fatalf("expected citation unverified by sources to be dropped, got %v", a.ValidatedCitations)
	}
	if a.CitationAccuracy >= 0.5 {
		t.Fatalf("expected low citation accuracy, got %.2f", a.CitationAccuracy)
	}
}

func TestAssessFlagsSelfDisqualifyingResponse(t *testing.T) {
	uc := newAssessor()

	response := "As an AI, I cannot provide legal advice, so you should search online for the relevant cases and statutes instead of relying on this."
	a := uc.Assess("Can I cancel a signed lease?", response, nil)
	assertIssueContaining(t, a.Issues, "disclaims its own legal authority")
	assertIssueContaining(t, a.Issues, "external search")
}

func TestAssessRecommendationsFollowIssues(t *testing.T) {
	uc := newAssessor()

	a := uc.Assess("What are the requirements for a valid will in South Africa?", "You should write it down and sign it.", nil)
	if len(a.Recommendations) == 0 {
		t.Fatalf("expected recommendations for a failing assessment")
	}
	if len(a.Recommendations) != len(a.Issues) {
		t.Fatalf("expected one recommendation per issue, got %d issues and %d recommendations", len(a.Issues), len(a.Recommendations))
	}
}

func TestAssessFailsSoftOnScoringPanic(t *testing.T) {
	uc := NewAssessResponseUseCase(&panickingParser{}, DefaultRubric())

	a := uc.Assess("query", "response", nil)
	if a.OverallScore != 0.5 {
		t.Fatalf("expected degraded overall score 0.5, got %.2f", a.OverallScore)
	}
	if len(a.Issues) != 1 || !strings.Contains(a.Issues[0], "assessment failed") {
		t.Fatalf("expected single failure issue, got %v", a.Issues)
	}
}

func TestAssessReportsAtMostTenTerms(t *testing.T) {
	uc := newAssessor()

	response := "The plaintiff, defendant, applicant, respondent, appellant and accused appeared; the advocate, " +
		"attorney and magistrate argued jurisdiction, precedent, judgment, interdict, delict and estoppel."
	a := uc.Assess("Who appeared in court?", response, nil)
	if len(a.LegalTermsFound) != 10 {
		t.Fatalf("expected term list capped at 10, got %d", len(a.LegalTermsFound))
	}
}

func assertIssueContaining(t *testing.T, issues []string, fragment string) {
	t.Helper()
	for _, issue := range issues {
		if strings.Contains(issue, fragment) {
			return
		}
	}
	t.Fatalf("expected an issue containing %q, got %v", fragment, issues)
}

type panickingParser struct{}

func (p *panickingParser) ExtractCitations(string) []domain.Citation {
	panic("pattern table corrupted")
}
func (p *panickingParser) ExtractLegalTerms(string) []string { return nil }
func (p *panickingParser) ScanRegister(string) ([]string, []string) { return nil, nil }
func (p *panickingParser) MatchesCitationPattern(string) bool { return false }
func (p *panickingParser) Authority(domain.CitationType) (string, bool) { return "", false }
func (p *panickingParser) ClassifyDocumentType(string) (domain.DocumentType, float64) {
	return domain.DocumentUnknown, 0
}
