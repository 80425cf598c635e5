package analysis

import (
	"sort"
	"strings"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

type keywordHit struct {
	offset  int
	rank    int
	keyword string
}

// DetectRisks flags each risk category whose keywords occur in text. Every
// occurrence is listed, in source order, so a repeated keyword appears once
// per occurrence. Categories without hits are omitted.
func DetectRisks(lex lexicon.Lexicon, text string) RiskIndicatorSet {
	lower := foldCase(text)
	risks := make(RiskIndicatorSet)

	for _, category := range lex.RiskCategories {
		var hits []keywordHit
		for rank, kw := range category.Keywords {
			for from := 0; ; {
				i := strings.Index(lower[from:], kw)
				if i < 0 {
					break
				}
				hits = append(hits, keywordHit{offset: from + i, rank: rank, keyword: kw})
				from += i + len(kw)
			}
		}
		if len(hits) == 0 {
			continue
		}

		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].offset != hits[j].offset {
				return hits[i].offset < hits[j].offset
			}
			return hits[i].rank < hits[j].rank
		})

		found := make([]string, len(hits))
		for i, h := range hits {
			found[i] = h.keyword
		}
		risks[category.Name] = RiskIndicator{Present: true, KeywordsFound: found}
	}

	return risks
}
