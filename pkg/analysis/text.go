package analysis

import (
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	maxEntitiesPerCategory = 10
	maxAmbiguities         = 5
	maxSentencesPerBucket  = 10
	maxClauseExcerpt       = 500
	sentenceScanLimit      = 50_000
	entityScanLimit        = 100_000
	ambiguityHalfWindow    = 50
)

// foldCase lower-cases rune by rune so rune offsets in the result line up with the input.
func foldCase(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// headRunes returns at most the first n runes of s.
func headRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// dedupeCap keeps the first occurrence of each value, in order, up to limit entries.
func dedupeCap(values []string, limit int) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, min(len(values), limit))
	for _, v := range values {
		if len(out) == limit {
			break
		}
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return out
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}
