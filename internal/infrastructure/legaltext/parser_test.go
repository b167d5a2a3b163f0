package legaltext

import (
	"strings"
	"testing"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

func TestExtractCitationsRecognizesMixedFormats(t *testing.T) {
	parser := NewParser()

	citations := parser.ExtractCitations("See [2021] ZACC 13 and Act 71 of 2008.")
	if len(citations) != 2 {
		t.Fatalf("expected 2 citations, got %d: %+v", len(citations), citations)
	}

	first := citations[0]
	if first.Text != "[2021] ZACC 13" {
		t.Fatalf("expected constitutional court citation text, got %q", first.Text)
	}
	if first.Type != domain.CitationConstitutionalCourt {
		t.Fatalf("expected constitutional_court type, got %s", first.Type)
	}
	if first.Year != 2021 {
		t.Fatalf("expected year 2021, got %d", first.Year)
	}
	if first.Court != "Constitutional Court of South Africa" {
		t.Fatalf("unexpected court resolution %q", first.Court)
	}

	second := citations[1]
	if second.Text != "Act 71 of 2008" {
		t.Fatalf("expected statute citation text, got %q", second.Text)
	}
	if second.Type != domain.CitationStatute {
		t.Fatalf("expected statute type, got %s", second.Type)
	}
	if second.Year != 2008 {
		t.Fatalf("expected year 2008, got %d", second.Year)
	}
}

func TestExtractCitationsDeduplicatesByText(t *testing.T) {
	parser := NewParser()

	citations := parser.ExtractCitations("Act 71 of 2008 amends earlier law. Act 71 of 2008 commenced in 2011.")
	if len(citations) != 1 {
		t.Fatalf("expected duplicate citation collapsed to 1, got %d", len(citations))
	}
	if citations[0].Text != "Act 71 of 2008" {
		t.Fatalf("unexpected citation text %q", citations[0].Text)
	}
}

func TestExtractCitationsOrderFollowsRuleTable(t *testing.T) {
	parser := NewParser()

	text := "Compare [2020] ZASCA 99 with 2019 (2) SA 343 (SCA) and GN R1234."
	citations := parser.ExtractCitations(text)
	if len(citations) != 3 {
		t.Fatalf("expected 3 citations, got %d", len(citations))
	}
	// Case-law reports precede appeal-court citations in the rule table
	// regardless of position in the text.
	if citations[0].Type != domain.CitationCaseLawReport {
		t.Fatalf("expected case_law_report first, got %s", citations[0].Type)
	}
	if citations[1].Type != domain.CitationAppealCourt {
		t.Fatalf("expected appeal_court second, got %s", citations[1].Type)
	}
	if citations[2].Type != domain.CitationRegulation {
		t.Fatalf("expected regulation last, got %s", citations[2].Type)
	}
}

func TestExtractCitationsIncludesContext(t *testing.T) {
	parser := NewParser()

	citations := parser.ExtractCitations("The applicant relies on Act 71 of 2008 for the relief sought.")
	if len(citations) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(citations))
	}
	if !strings.Contains(citations[0].Context, "applicant relies on") {
		t.Fatalf("expected surrounding context, got %q", citations[0].Context)
	}
}

func TestExtractCitationsEmptyText(t *testing.T) {
	parser := NewParser()
	if got := parser.ExtractCitations(""); len(got) != 0 {
		t.Fatalf("expected no citations for empty text, got %d", len(got))
	}
}

func TestExtractLegalTermsVocabularyOrder(t *testing.T) {
	parser := NewParser()

	terms := parser.ExtractLegalTerms("The defendant raised estoppel; the plaintiff replied prima facie.")
	want := []string{"plaintiff", "defendant", "estoppel", "prima facie"}
	if len(terms) != len(want) {
		t.Fatalf("expected %d terms, got %d: %v", len(want), len(terms), terms)
	}
	for i, term := range want {
		if terms[i] != term {
			t.Fatalf("expected term %q at position %d, got %q", term, i, terms[i])
		}
	}
}

func TestExtractLegalTermsCaseInsensitiveAndDeduplicated(t *testing.T) {
	parser := NewParser()

	terms := parser.ExtractLegalTerms("PLAINTIFF and plaintiff and Plaintiff")
	if len(terms) != 1 || terms[0] != "plaintiff" {
		t.Fatalf("expected single lowercase term, got %v", terms)
	}
}

func TestScanRegister(t *testing.T) {
	parser := NewParser()

	formal, casual := parser.ScanRegister("In terms of the Act, I think this is probably enforceable, inter alia.")
	if len(formal) != 2 {
		t.Fatalf("expected 2 formal phrases, got %v", formal)
	}
	if formal[0] != "in terms of" || formal[1] != "inter alia" {
		t.Fatalf("unexpected formal phrases %v", formal)
	}
	if len(casual) != 2 {
		t.Fatalf("expected 2 casual phrases, got %v", casual)
	}
}

func TestClassifyDocumentTypeJudgment(t *testing.T) {
	parser := NewParser()

	text := "IN THE HIGH COURT OF SOUTH AFRICA. Coram: Mokoena J. The appellant appeals the order of the court a quo. It is ordered that the appeal is dismissed with costs. Judgment delivered."
	docType, confidence := parser.ClassifyDocumentType(text)
	if docType != domain.DocumentJudgment {
		t.Fatalf("expected judgment, got %s (confidence %.2f)", docType, confidence)
	}
	if confidence < 0.1 {
		t.Fatalf("expected confidence >= 0.1, got %.2f", confidence)
	}
}

func TestClassifyDocumentTypeContract(t *testing.T) {
	parser := NewParser()

	text := "This agreement is entered into between the parties. Clause 4 governs breach and the right to terminate. The parties agree to the obligations herein."
	docType, _ := parser.ClassifyDocumentType(text)
	if docType != domain.DocumentContract {
		t.Fatalf("expected contract, got %s", docType)
	}
}

func TestClassifyDocumentTypeUnknownForEmptyAndUnrelatedText(t *testing.T) {
	parser := NewParser()

	if docType, confidence := parser.ClassifyDocumentType(""); docType != domain.DocumentUnknown || confidence != 0 {
		t.Fatalf("expected unknown/0 for empty text, got %s/%.2f", docType, confidence)
	}

	unrelated := strings.Repeat("the weather in cape town is mild and windy today ", 40)
	if docType, confidence := parser.ClassifyDocumentType(unrelated); docType != domain.DocumentUnknown || confidence != 0 {
		t.Fatalf("expected unknown/0 for unrelated text, got %s/%.2f", docType, confidence)
	}
}

func TestMatchesCitationPattern(t *testing.T) {
	parser := NewParser()

	if !parser.MatchesCitationPattern("[2021] ZACC 13") {
		t.Fatalf("expected ZACC citation to match")
	}
	if parser.MatchesCitationPattern("some informal reference") {
		t.Fatalf("expected non-citation text not to match")
	}
}
