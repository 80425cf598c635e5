package analysis

import "github.com/athapong/contract-analyzer/pkg/lexicon"

// ClassifySentences buckets the sentences of the first 50,000 characters by
// modal cue. Prohibition cues are tested first because "shall not" contains
// "shall"; obligation cues come next and right cues last. Sentences without
// any cue are dropped.
func ClassifySentences(lex lexicon.Lexicon, backend Backend, text string) ObligationSet {
	set := ObligationSet{
		Obligations:  make([]string, 0),
		Rights:       make([]string, 0),
		Prohibitions: make([]string, 0),
	}

	for _, sentence := range backend.Sentences(headRunes(text, sentenceScanLimit)) {
		lower := foldCase(sentence)

		var bucket *[]string
		switch {
		case containsAny(lower, lex.ProhibitionCues):
			bucket = &set.Prohibitions
		case containsAny(lower, lex.ObligationCues):
			bucket = &set.Obligations
		case containsAny(lower, lex.RightCues):
			bucket = &set.Rights
		default:
			continue
		}

		if len(*bucket) < maxSentencesPerBucket {
			*bucket = append(*bucket, sentence)
		}
	}

	return set
}
