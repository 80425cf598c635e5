package analysis

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	BackendPattern = "pattern"
	BackendProse   = "prose"
)

// ErrUnknownBackend is returned by NewBackend for an unrecognised name.
var ErrUnknownBackend = errors.New("unknown nlp backend")

// Backend supplies the language-level primitives the analysis components
// build on. Implementations must be safe for concurrent use.
type Backend interface {
	Name() string
	// Sentences splits text into trimmed, non-empty sentences in document order.
	Sentences(text string) []string
	// Persons returns personal names in document order, duplicates allowed.
	Persons(text string) []string
}

// NewBackend resolves a configured backend name. An empty name selects the
// pattern backend.
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendPattern:
		return PatternBackend{}, nil
	case BackendProse:
		return NewProseBackend(nil), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
	}
}

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	honorificName    = regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Dr|Shri|Smt)\.?[ \t]+[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*`)
)

// PatternBackend splits sentences on runs of terminal punctuation and finds
// persons by honorific. It needs no model data and is always available.
type PatternBackend struct{}

func (PatternBackend) Name() string {
	return BackendPattern
}

func (PatternBackend) Sentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func (PatternBackend) Persons(text string) []string {
	return honorificName.FindAllString(text, -1)
}
