package analysis

import (
	"regexp"
	"strings"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

var (
	datePatterns = []*regexp.Regexp{
		// 12/05/2024, 1-3-24
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		// March 5, 2024
		regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
		// 5 Mar 2024, 5 March 2024
		regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`),
	}

	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:\bINR|\bRs\.?|₹)\s*\d+(?:,\d+)*(?:\.\d{2})?`),
		regexp.MustCompile(`\$\s*\d+(?:,\d+)*(?:\.\d{2})?`),
		regexp.MustCompile(`(?i)\b\d+\s*(?:lakhs?|crores?|thousands?|millions?)\b`),
	}

	organizationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Pvt\.?\s+)?Ltd\.?\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+Inc\.?\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+Corp\.?\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+LLC\b`),
	}

	durationPattern = regexp.MustCompile(`(?i)\b\d+\s*(?:days?|weeks?|months?|years?)\b`)

	// "between X and Y" or "between X, ..."; Y is optional and must be a run of capitalised words.
	partyPattern = regexp.MustCompile(`(?i:between)\s+([A-Za-z][A-Za-z\s&.]+?)(?:\s+(?i:and)\s+([A-Z][A-Za-z&]*(?:[ \t]+[A-Z][A-Za-z&]*)*)?|\s*,)`)

	cinPattern = regexp.MustCompile(`CIN:\s*([A-Z0-9]{21})`)
	gstPattern = regexp.MustCompile(`GST:\s*(\d{2}[A-Z]{5}\d{4}[A-Z][0-9A-Z][A-Z][0-9A-Z])`)
)

// ExtractEntities scans the first 100,000 characters of text for dates,
// amounts, organisations, locations, durations, persons, parties and
// registration numbers.
func ExtractEntities(lex lexicon.Lexicon, backend Backend, text string) EntityBag {
	scan := headRunes(text, entityScanLimit)

	organizations := dedupeCap(findAll(organizationPatterns, scan), maxEntitiesPerCategory)

	parties := make([]string, 0, 2)
	for _, m := range partyPattern.FindAllStringSubmatch(scan, -1) {
		for _, name := range m[1:] {
			if name = strings.TrimSpace(name); name != "" && len(parties) < 2 {
				parties = append(parties, name)
			}
		}
		if len(parties) == 2 {
			break
		}
	}
	if len(parties) == 0 {
		parties = append(parties, organizations[:min(2, len(organizations))]...)
	}

	return EntityBag{
		Parties:       dedupeCap(parties, maxEntitiesPerCategory),
		Persons:       dedupeCap(backend.Persons(scan), maxEntitiesPerCategory),
		Organizations: organizations,
		Dates:         dedupeCap(findAll(datePatterns, scan), maxEntitiesPerCategory),
		Amounts:       dedupeCap(findAll(amountPatterns, scan), maxEntitiesPerCategory),
		Locations:     dedupeCap(findLocations(lex.Locations, scan), maxEntitiesPerCategory),
		Durations:     dedupeCap(durationPattern.FindAllString(scan, -1), maxEntitiesPerCategory),
		CIN:           captures(cinPattern, scan),
		GST:           captures(gstPattern, scan),
	}
}

// findAll runs each pattern in turn, concatenating matches pattern by pattern.
func findAll(patterns []*regexp.Regexp, text string) []string {
	var out []string
	for _, p := range patterns {
		out = append(out, p.FindAllString(text, -1)...)
	}
	return out
}

func findLocations(gazetteer []string, text string) []string {
	lower := foldCase(text)
	var found []string
	for _, place := range gazetteer {
		if strings.Contains(lower, foldCase(place)) {
			found = append(found, place)
		}
	}
	return found
}

func captures(p *regexp.Regexp, text string) []string {
	out := make([]string, 0)
	for _, m := range p.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}
