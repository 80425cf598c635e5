package analysis

import (
	"strings"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

// Classify picks the contract category whose keyword phrases appear most often
// in text. Each phrase counts once however often it occurs. Ties go to the
// category declared first; no hits at all yields the lexicon's default label.
func Classify(lex lexicon.Lexicon, text string) string {
	lower := foldCase(text)

	best, bestScore := lex.DefaultType, 0
	for _, category := range lex.ContractTypes {
		score := 0
		for _, kw := range category.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = category.Name, score
		}
	}
	return best
}
