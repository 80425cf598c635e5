package analysis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
)

const scenarioText = "This Agreement is between Acme Ltd and Beta Corp. The Employee shall not disclose salary details. Termination requires 30 days notice. Rs. 50,000 payable on 12/05/2024."

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(lexicon.Default(), PatternBackend{}, nil)
}

func TestAnalyzeScenario(t *testing.T) {
	record, err := newTestAnalyzer().Analyze(context.Background(), scenarioText)
	require.NoError(t, err)

	assert.Equal(t, lexicon.TypeEmployment, record.ContractType)
	assert.Empty(t, record.Clauses)

	assert.Equal(t, []string{"Acme Ltd", "Beta Corp"}, record.Entities.Organizations)
	// The lazy first capture runs up to " and ", so the Ltd suffix stays
	// with the first party: "Acme Ltd", not "Acme".
	assert.Equal(t, []string{"Acme Ltd", "Beta Corp"}, record.Entities.Parties)
	assert.Equal(t, []string{"Rs. 50,000"}, record.Entities.Amounts)
	assert.Equal(t, []string{"12/05/2024"}, record.Entities.Dates)
	assert.Equal(t, []string{"30 days"}, record.Entities.Durations)

	require.Contains(t, record.RiskIndicators, lexicon.RiskTermination)
	assert.Len(t, record.RiskIndicators, 1)
	assert.Equal(t, RiskIndicator{Present: true, KeywordsFound: []string{"termination"}}, record.RiskIndicators[lexicon.RiskTermination])

	assert.Equal(t, []string{"The Employee shall not disclose salary details"}, record.ObligationsRights.Prohibitions)
	assert.Empty(t, record.ObligationsRights.Obligations)
	assert.Empty(t, record.ObligationsRights.Rights)
	assert.Empty(t, record.Ambiguities)
}

func TestAnalyzeEmptyText(t *testing.T) {
	record, err := newTestAnalyzer().Analyze(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, lexicon.TypeGeneral, record.ContractType)
	assert.Empty(t, record.Clauses)
	assert.Empty(t, record.RiskIndicators)
	assert.Empty(t, record.Ambiguities)
	for category, values := range record.Entities.Categories() {
		assert.Empty(t, values, category)
	}
	assert.Empty(t, record.ObligationsRights.Obligations)
	assert.Empty(t, record.ObligationsRights.Rights)
	assert.Empty(t, record.ObligationsRights.Prohibitions)

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"contract_type": "General",
		"entities": {"parties": [], "persons": [], "organizations": [], "dates": [], "amounts": [],
			"locations": [], "durations": [], "cin": [], "gst": []},
		"clauses": [],
		"obligations_rights": {"obligations": [], "rights": [], "prohibitions": []},
		"risk_indicators": {},
		"ambiguities": []
	}`, string(raw))
}

func TestAnalyzeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAnalyzer().Analyze(ctx, scenarioText)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewAnalyzerDefaultsToPatternBackend(t *testing.T) {
	a := NewAnalyzer(lexicon.Default(), nil, nil)
	assert.Equal(t, BackendPattern, a.Backend().Name())
	assert.Equal(t, lexicon.TypeGeneral, a.Lexicon().DefaultType)
}
