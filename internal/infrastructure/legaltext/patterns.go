package legaltext

import (
	"regexp"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
)

// PatternTableVersion identifies the citation rule table below. Both
// extraction and scorer-side validation go through this single table so the
// two can never drift apart.
const PatternTableVersion = 2

type citationRule struct {
	citationType domain.CitationType
	pattern      *regexp.Regexp
}

// citationRules is evaluated in declaration order. Order matters: extracted
// citations keep first-seen ordering across rules, which keeps downstream
// assertions stable.
var citationRules = []citationRule{
	// 2019 (2) SA 343 (SCA)
	{domain.CitationCaseLawReport, regexp.MustCompile(`\d{4}\s+\(\d+\)\s+SA\s+\d+\s+\([A-Z]+\)`)},
	// [2021] ZACC 13
	{domain.CitationConstitutionalCourt, regexp.MustCompile(`\[\d{4}\]\s+ZACC\s+\d+`)},
	// [2020] ZASCA 99
	{domain.CitationAppealCourt, regexp.MustCompile(`\[\d{4}\]\s+ZASCA\s+\d+`)},
	// Act 71 of 2008, Act No. 108 of 1996
	{domain.CitationStatute, regexp.MustCompile(`(?i)Act\s+(?:No\.?\s*)?\d+\s+of\s+\d{4}`)},
	// Government Gazette No. 45204, GG 45204
	{domain.CitationGovernmentGazette, regexp.MustCompile(`(?i)Government\s+Gazette\s+(?:No\.?\s*)?\d+`)},
	{domain.CitationGovernmentGazette, regexp.MustCompile(`\bGG\s+\d+`)},
	// GN R1234, GN 509
	{domain.CitationRegulation, regexp.MustCompile(`\bGN\s+R?\d+`)},
}

// authorityByType resolves a citation type to the authority it points at.
var authorityByType = map[domain.CitationType]string{
	domain.CitationCaseLawReport:       "South African Law Reports",
	domain.CitationConstitutionalCourt: "Constitutional Court of South Africa",
	domain.CitationAppealCourt:         "Supreme Court of Appeal",
	domain.CitationStatute:             "Parliament of the Republic of South Africa",
	domain.CitationGovernmentGazette:   "Government Printing Works",
	domain.CitationRegulation:          "Government Gazette",
}

var yearPattern = regexp.MustCompile(`\d{4}`)
