package usecase

import "regexp"

// Rubric holds the tunable parts of the scoring rubric. The citation density
// band is a tuned constant with no principled derivation; it is exposed as
// configuration rather than baked in.
type Rubric struct {
	// Citations per character of response text. A count inside the band is
	// considered reasonable and earns the density bonus.
	DensityMin float64
	DensityMax float64
}

func DefaultRubric() Rubric {
	return Rubric{
		DensityMin: 1.0 / 2000.0,
		DensityMax: 1.0 / 150.0,
	}
}

func (r Rubric) normalize() Rubric {
	out := r
	def := DefaultRubric()
	if out.DensityMin <= 0 {
		out.DensityMin = def.DensityMin
	}
	if out.DensityMax <= out.DensityMin {
		out.DensityMax = def.DensityMax
	}
	return out
}

// Phrases identifying the South African legal system.
var saSystemPhrases = []string{
	"constitution of the republic of south africa",
	"republic of south africa",
	"south african law",
	"south africa",
	"roman-dutch law",
	"customary law",
}

// Concepts specific to South African legal doctrine.
var saLegalConcepts = []string{
	"ubuntu",
	"boni mores",
	"bill of rights",
	"audi alteram partem",
	"spoliation",
	"delict",
}

// A professional-referral disclaimer is expected in a responsible legal
// answer and earns a small jurisdiction-context credit.
var referralPhrases = []string{
	"consult a qualified attorney",
	"consult an attorney",
	"consult a legal practitioner",
	"seek legal advice",
	"seek professional legal advice",
}

var interrogatives = []string{
	"what", "how", "when", "where", "why", "who", "which", "can", "does", "is", "are", "should",
}

var answerSignals = []string{
	"the answer",
	"this means",
	"in terms of",
	"according to",
	"you are entitled",
	"the law provides",
	"the position is",
}

var legalQueryKeywords = []string{
	"law", "legal", "right", "rights", "court", "act", "contract", "sue",
	"liable", "divorce", "will", "estate", "lease", "dismissal", "arrest",
}

var legalResponsePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)section\s+\d+`),
	regexp.MustCompile(`(?i)\bheld\b`),
	regexp.MustCompile(`(?i)\bprecedent\b`),
	regexp.MustCompile(`(?i)the court`),
	regexp.MustCompile(`(?i)in terms of the`),
}

// Phrases that undercut the response's own authority, as opposed to the
// referral disclaimers above.
var underminingPhrases = []string{
	"i cannot provide legal advice",
	"i am unable to provide legal advice",
	"as an ai",
	"i am just an ai",
	"i'm not a lawyer",
}

var externalSearchPhrases = []string{
	"search online",
	"search the internet",
	"google it",
	"look it up online",
	"search externally",
}
