package legal

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/contract-analyzer/pkg/analysis"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantScore Score
		wantErr   bool
	}{
		{"plain", `{"risk_assessment": {"composite_score": 70}}`, 70, false},
		{"fenced", "```json\n{\"risk_assessment\": {\"composite_score\": 12}}\n```", 12, false},
		{"quoted score", `{"risk_assessment": {"composite_score": "77"}}`, 77, false},
		{"fractional score", `{"risk_assessment": {"composite_score": 55.6}}`, 56, false},
		{"not json", `composite_score: 70`, 0, true},
		{"array", `[1, 2]`, 0, true},
		{"missing assessment", `{"language_detected": "English"}`, 0, true},
		{"missing score", `{"risk_assessment": {"risk_level": "Low"}}`, 0, true},
		{"score out of range", `{"risk_assessment": {"composite_score": 150}}`, 0, true},
		{"score not numeric", `{"risk_assessment": {"composite_score": "high"}}`, 0, true},
		{"nan score", `{"risk_assessment": {"composite_score": "NaN"}}`, 0, true},
		{"infinite score", `{"risk_assessment": {"composite_score": "+Inf"}}`, 0, true},
		{"padded quoted score", `{"risk_assessment": {"composite_score": " 42 "}}`, 42, false},
		{"wrong field type", `{"risk_assessment": {"composite_score": 10}, "missing_protections": "none"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVerdict(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidResponse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, v.RiskAssessment.CompositeScore)
		})
	}
}

func TestScoreUnmarshalJSON(t *testing.T) {
	var ra RiskAssessment
	require.NoError(t, json.Unmarshal([]byte(`{"composite_score": " 42 "}`), &ra))
	assert.Equal(t, Score(42), ra.CompositeScore)

	require.NoError(t, json.Unmarshal([]byte(`{"composite_score": 12.5}`), &ra))
	assert.Equal(t, Score(13), ra.CompositeScore)

	assert.Error(t, json.Unmarshal([]byte(`{"composite_score": "NaN"}`), &ra))
	assert.Error(t, json.Unmarshal([]byte(`{"composite_score": "-Inf"}`), &ra))
}

func TestParseVerdictClearsEchoedMockFlags(t *testing.T) {
	v, err := ParseVerdict(`{"risk_assessment": {"composite_score": 10}, "mock": true, "error": "x"}`)
	require.NoError(t, err)
	assert.False(t, v.Mock)
	assert.Empty(t, v.Error)
}

func TestBuildPrompt(t *testing.T) {
	text := strings.Repeat("a", ExcerptLimit) + "TAIL"
	record := &analysis.Record{
		ContractType: "Service",
		Entities:     analysis.EntityBag{Parties: []string{"Acme Ltd"}, Amounts: []string{"INR 5,000"}},
		RiskIndicators: analysis.RiskIndicatorSet{
			"penalty":     {Present: true},
			"termination": {Present: true},
		},
		Ambiguities: []analysis.Ambiguity{{Phrase: "reasonable"}, {Phrase: "promptly"}},
		Clauses:     []analysis.Clause{{Number: "1."}},
	}

	p := BuildPrompt(text, "Service", record)
	assert.Contains(t, p.System, "Indian legal advisor")
	assert.NotContains(t, p.User, "TAIL")
	assert.Contains(t, p.User, "- Contract type: Service")
	assert.Contains(t, p.User, "- Parties: Acme Ltd")
	assert.Contains(t, p.User, "- Detected risk indicators: penalty, termination")
	assert.Contains(t, p.User, "- Ambiguous terms found: 2")
	assert.Contains(t, p.User, "- Amounts: INR 5,000")
	assert.Contains(t, p.User, `"composite_score": 0-100`)
}

func TestExcerptCountsCharacters(t *testing.T) {
	text := strings.Repeat("₹", ExcerptLimit+10)
	assert.Equal(t, ExcerptLimit, len([]rune(Excerpt(text))))
	assert.Equal(t, "short", Excerpt("short"))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}
