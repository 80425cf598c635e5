package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

// DetectAmbiguities reports up to five vague phrases, in vocabulary order,
// each with a window of at most 101 characters centred on its first occurrence
// and clipped to the line it appears on.
func DetectAmbiguities(lex lexicon.Lexicon, text string) []Ambiguity {
	found := make([]Ambiguity, 0)
	if text == "" {
		return found
	}

	lower := foldCase(text)
	runes := []rune(text)

	for _, phrase := range lex.VaguePhrases {
		if len(found) == maxAmbiguities {
			break
		}

		i := strings.Index(lower, phrase)
		if i < 0 {
			continue
		}

		start := utf8.RuneCountInString(lower[:i])
		mid := start + utf8.RuneCountInString(phrase)/2
		from := max(0, mid-ambiguityHalfWindow)
		to := min(len(runes), mid+ambiguityHalfWindow+1)

		// The window never crosses a line break.
		for k := start - 1; k >= from; k-- {
			if runes[k] == '\n' {
				from = k + 1
				break
			}
		}
		for k := start + utf8.RuneCountInString(phrase); k < to; k++ {
			if runes[k] == '\n' {
				to = k
				break
			}
		}

		found = append(found, Ambiguity{
			Phrase:  phrase,
			Context: string(runes[from:to]),
		})
	}

	return found
}
