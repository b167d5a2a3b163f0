package domain

// Source is one retrieved document supplied by the caller alongside a
// generated response. The core never performs retrieval itself.
type Source struct {
	Content         string  `json:"content"`
	Title           string  `json:"title"`
	SimilarityScore float64 `json:"similarity_score"`
	Jurisdiction    string  `json:"jurisdiction,omitempty"`
}

// Fixed rubric weights. OverallScore is always the weighted sum of the five
// sub-scores with these weights, never set independently.
const (
	WeightCitationAccuracy    = 0.25
	WeightTerminology         = 0.20
	WeightRelevance           = 0.25
	WeightJurisdictionContext = 0.20
	WeightConfidence          = 0.10
)

type QualityAssessment struct {
	OverallScore             float64 `json:"overall_score"`
	CitationAccuracy         float64 `json:"citation_accuracy"`
	TerminologyScore         float64 `json:"terminology_score"`
	RelevanceScore           float64 `json:"relevance_score"`
	JurisdictionContextScore float64 `json:"jurisdiction_context_score"`
	ConfidenceScore          float64 `json:"confidence_score"`

	Issues             []string `json:"issues,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	ValidatedCitations []string `json:"validated_citations,omitempty"`
	LegalTermsFound    []string `json:"legal_terms_found,omitempty"`
}

// WeightedOverall combines the five sub-scores with the fixed rubric weights.
func WeightedOverall(citation, terminology, relevance, jurisdiction, confidence float64) float64 {
	return WeightCitationAccuracy*citation +
		WeightTerminology*terminology +
		WeightRelevance*relevance +
		WeightJurisdictionContext*jurisdiction +
		WeightConfidence*confidence
}
