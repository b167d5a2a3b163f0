package domain

type CitationType string

const (
	CitationCaseLawReport       CitationType = "case_law_report"
	CitationConstitutionalCourt CitationType = "constitutional_court"
	CitationAppealCourt         CitationType = "appeal_court"
	CitationStatute             CitationType = "statute"
	CitationGovernmentGazette   CitationType = "government_gazette"
	CitationRegulation          CitationType = "regulation"
)

// Citation is one recognized legal reference extracted from free text.
// Instances are transient: they only live inside a QualityAssessment or a
// cached response payload.
type Citation struct {
	Text    string       `json:"text"`
	Type    CitationType `json:"citation_type"`
	Court   string       `json:"court,omitempty"`
	Year    int          `json:"year,omitempty"`
	Context string       `json:"context,omitempty"`
}

type DocumentType string

const (
	DocumentJudgment DocumentType = "judgment"
	DocumentContract DocumentType = "contract"
	DocumentStatute  DocumentType = "statute"
	DocumentPleading DocumentType = "pleading"
	DocumentUnknown  DocumentType = "unknown"
)
