package analysis

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

func TestNewBackend(t *testing.T) {
	b, err := NewBackend("")
	require.NoError(t, err)
	assert.Equal(t, BackendPattern, b.Name())

	b, err = NewBackend(" Prose ")
	require.NoError(t, err)
	assert.Equal(t, BackendProse, b.Name())

	_, err = NewBackend("spacy")
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestPatternBackendSentences(t *testing.T) {
	got := PatternBackend{}.Sentences("One. Two!! Three?  \n... ")
	assert.Equal(t, []string{"One", "Two", "Three"}, got)
	assert.Empty(t, PatternBackend{}.Sentences(""))
}

func TestProseBackendClassifiesSentences(t *testing.T) {
	text := "The Vendor shall deliver the goods. The Buyer may inspect them."

	set := ClassifySentences(lexicon.Default(), NewProseBackend(nil), text)
	require.Len(t, set.Obligations, 1)
	require.Len(t, set.Rights, 1)
	assert.Contains(t, set.Obligations[0], "shall deliver")
	assert.Contains(t, set.Rights[0], "may inspect")
}
