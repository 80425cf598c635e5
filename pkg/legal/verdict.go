package legal

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Verdict is the legal review returned by the language model, or the static
// fallback when no model response could be obtained. Mock marks the latter.
type Verdict struct {
	LanguageDetected      string                `json:"language_detected"`
	ContractInfo          ContractInfo          `json:"contract_info"`
	RiskAssessment        RiskAssessment        `json:"risk_assessment"`
	ClauseBreakdown       []ClauseReview        `json:"clause_breakdown"`
	ComplianceCheck       []ComplianceItem      `json:"compliance_check"`
	UnfavorableTerms      []UnfavorableTerm     `json:"unfavorable_terms"`
	MissingProtections    []string              `json:"missing_protections"`
	OverallRecommendation OverallRecommendation `json:"overall_recommendation"`

	Mock  bool   `json:"mock,omitempty"`
	Error string `json:"error,omitempty"`
}

type ContractInfo struct {
	Type          string   `json:"type"`
	Parties       []string `json:"parties"`
	EffectiveDate *string  `json:"effective_date"`
	Duration      *string  `json:"duration"`
	Jurisdiction  string   `json:"jurisdiction"`
	GoverningLaw  string   `json:"governing_law"`
	KeyAmounts    []string `json:"key_amounts"`
}

type RiskAssessment struct {
	CompositeScore Score     `json:"composite_score"`
	RiskLevel      string    `json:"risk_level"`
	Summary        string    `json:"summary"`
	KeyRisks       []KeyRisk `json:"key_risks"`
}

type KeyRisk struct {
	Clause       string `json:"clause"`
	RiskLevel    string `json:"risk_level"`
	Category     string `json:"category"`
	Explanation  string `json:"explanation"`
	LegalConcern string `json:"legal_concern"`
	Suggestion   string `json:"suggestion"`
	Priority     string `json:"priority"`
}

type ClauseReview struct {
	ClauseNumber          string   `json:"clause_number"`
	ClauseName            string   `json:"clause_name"`
	OriginalText          string   `json:"original_text"`
	SimplifiedExplanation string   `json:"simplified_explanation"`
	Obligations           []string `json:"obligations"`
	Rights                []string `json:"rights"`
	RedFlags              []string `json:"red_flags"`
}

type ComplianceItem struct {
	Law            string `json:"law"`
	Section        string `json:"section"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	Recommendation string `json:"recommendation"`
}

type UnfavorableTerm struct {
	Term                string `json:"term"`
	Impact              string `json:"impact"`
	NegotiationStrategy string `json:"negotiation_strategy"`
}

type OverallRecommendation struct {
	Verdict              string   `json:"verdict"`
	Reasoning            string   `json:"reasoning"`
	PriorityNegotiations []string `json:"priority_negotiations"`
}

// Score is a 0-100 composite risk score. Models sometimes quote it or send a
// fraction, so both are accepted and rounded.
type Score int

func (s *Score) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	switch r.Type {
	case gjson.Null:
		*s = 0
		return nil
	case gjson.Number:
		*s = Score(math.Round(r.Num))
		return nil
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Errorf("composite_score %q is not a number", r.Str)
		}
		*s = Score(math.Round(f))
		return nil
	default:
		return errors.Errorf("composite_score has unexpected value %s", string(b))
	}
}
