package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "1. Title", "4.2 Title", "3.1.2. Title": a dotted numeral followed by a capitalised line.
	numberedClauseHead = regexp.MustCompile(`(\d+\.(?:\d+\.?)*)\s+([A-Z][^\n]+)`)
	numberedLineStart  = regexp.MustCompile(`^[ \t]*\d+\.`)

	// "PAYMENT TERMS: ..." blocks, used only when no numbered clause exists.
	sectionHead      = regexp.MustCompile(`([A-Z][A-Z\s]+):\s*([^\n]+)`)
	sectionLineStart = regexp.MustCompile(`^[A-Z][A-Z\s]+:`)
)

type block struct {
	label string
	body  string
}

// Segment splits text into clauses. Numbered clauses are preferred; when none
// exist, ALL-CAPS "HEADER:" sections are numbered 1..n instead. Text with
// neither yields an empty slice.
func Segment(text string) []Clause {
	clauses := make([]Clause, 0)

	for _, b := range scanBlocks(text, numberedClauseHead, numberedLineStart) {
		clauses = append(clauses, newClause(b.label, "", b.body))
	}
	if len(clauses) > 0 {
		return clauses
	}

	for i, b := range scanBlocks(text, sectionHead, sectionLineStart) {
		name := strings.Join(strings.Fields(b.label), " ")
		clauses = append(clauses, newClause(strconv.Itoa(i+1), name, b.body))
	}
	return clauses
}

func newClause(number, name, body string) Clause {
	full := strings.TrimSpace(body)
	return Clause{
		Number:   number,
		Name:     name,
		Text:     headRunes(full, maxClauseExcerpt),
		FullText: full,
	}
}

// scanBlocks finds non-overlapping matches of head, each extended over the
// following lines until a blank line, the end of text, or a line where
// startsNew matches. head must capture the label in group 1 and the first
// body line in group 2.
func scanBlocks(text string, head, startsNew *regexp.Regexp) []block {
	var blocks []block

	pos := 0
	for pos < len(text) {
		loc := head.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}

		label := text[pos+loc[2] : pos+loc[3]]
		bodyStart, end := pos+loc[4], pos+loc[5]

		for end < len(text) && text[end] == '\n' {
			lineStart := end + 1
			lineEnd := strings.IndexByte(text[lineStart:], '\n')
			if lineEnd < 0 {
				lineEnd = len(text)
			} else {
				lineEnd += lineStart
			}

			if strings.TrimSpace(text[lineStart:lineEnd]) == "" || startsNew.MatchString(text[lineStart:]) {
				break
			}
			end = lineEnd
		}

		blocks = append(blocks, block{label: label, body: text[bodyStart:end]})
		pos = end
	}

	return blocks
}
