package legaltext

// South African legal vocabulary. Scan order is declaration order, which is
// also the order extracted terms are reported in.
var legalTerms = []string{
	"constitutional court",
	"supreme court of appeal",
	"high court",
	"magistrates' court",
	"magistrates court",
	"labour court",
	"land claims court",
	"bill of rights",
	"plaintiff",
	"defendant",
	"applicant",
	"respondent",
	"appellant",
	"accused",
	"advocate",
	"attorney",
	"magistrate",
	"jurisdiction",
	"precedent",
	"judgment",
	"interdict",
	"delict",
	"estoppel",
	"prescription",
	"rescission",
	"servitude",
	"usufruct",
	"curator ad litem",
	"amicus curiae",
	"audi alteram partem",
	"bona fide",
	"mala fide",
	"prima facie",
	"ultra vires",
	"sub judice",
	"res judicata",
	"obiter dictum",
	"ratio decidendi",
	"locus standi",
}

var formalPhrases = []string{
	"in terms of",
	"pursuant to",
	"subject to",
	"notwithstanding",
	"mutatis mutandis",
	"inter alia",
	"it is hereby",
	"hereinafter",
	"whereas",
}

// Casual-register phrases penalize the terminology score. Hedge words top the
// list: a legal response should not guess.
var casualPhrases = []string{
	"i think",
	"i guess",
	"maybe",
	"probably",
	"kind of",
	"sort of",
	"stuff like",
	"you know",
	"basically",
}

type documentBucket struct {
	docType  string
	keywords []string
	patterns []string
}

// Buckets scored by ClassifyDocumentType. Keywords weigh 1.0 per hit and
// patterns 2.0, since a matched pattern is far more specific than a
// bag-of-words keyword.
var documentBuckets = []documentBucket{
	{
		docType:  "judgment",
		keywords: []string{"judgment", "court", "appellant", "respondent", "held", "order", "costs"},
		patterns: []string{`(?i)in the (?:high court|constitutional court|supreme court)`, `(?i)coram[:\s]`, `(?i)it is ordered that`},
	},
	{
		docType:  "contract",
		keywords: []string{"agreement", "party", "parties", "clause", "breach", "terminate", "obligations"},
		patterns: []string{`(?i)entered into (?:by and )?between`, `(?i)the parties agree`, `(?i)clause\s+\d+`},
	},
	{
		docType:  "statute",
		keywords: []string{"act", "section", "subsection", "minister", "regulation", "amendment", "gazette"},
		patterns: []string{`(?i)be it enacted`, `(?i)short title and commencement`, `(?i)section\s+\d+\s*\(\d+\)`},
	},
	{
		docType:  "pleading",
		keywords: []string{"plaintiff", "defendant", "particulars", "claim", "summons", "prayed", "damages"},
		patterns: []string{`(?i)particulars of claim`, `(?i)wherefore (?:the )?plaintiff prays`, `(?i)notice of motion`},
	},
}
