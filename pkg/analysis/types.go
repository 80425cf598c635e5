package analysis

import "sort"

// Clause is one numbered or headed unit of a contract.
type Clause struct {
	Number   string `json:"number"`
	Name     string `json:"name,omitempty"`
	Text     string `json:"text"`
	FullText string `json:"full_text"`
}

// EntityBag groups the structured mentions found in a contract.
// CIN and GST hold raw captures; every other category is deduplicated and capped.
type EntityBag struct {
	Parties       []string `json:"parties"`
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
	Amounts       []string `json:"amounts"`
	Locations     []string `json:"locations"`
	Durations     []string `json:"durations"`
	CIN           []string `json:"cin"`
	GST           []string `json:"gst"`
}

// Categories returns the bag keyed by category name.
func (b EntityBag) Categories() map[string][]string {
	return map[string][]string{
		"parties":       b.Parties,
		"persons":       b.Persons,
		"organizations": b.Organizations,
		"dates":         b.Dates,
		"amounts":       b.Amounts,
		"locations":     b.Locations,
		"durations":     b.Durations,
		"cin":           b.CIN,
		"gst":           b.GST,
	}
}

// RiskIndicator records the keywords that flagged one risk category.
type RiskIndicator struct {
	Present       bool     `json:"present"`
	KeywordsFound []string `json:"keywords_found"`
}

// RiskIndicatorSet holds only the categories with at least one keyword hit.
type RiskIndicatorSet map[string]RiskIndicator

// Categories returns the flagged category names, sorted.
func (s RiskIndicatorSet) Categories() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ambiguity is a vague qualifier and the text around its first occurrence.
type Ambiguity struct {
	Phrase  string `json:"phrase"`
	Context string `json:"context"`
}

// ObligationSet buckets sentences by the modal cue they carry.
type ObligationSet struct {
	Obligations  []string `json:"obligations"`
	Rights       []string `json:"rights"`
	Prohibitions []string `json:"prohibitions"`
}

// Record is the structural analysis of a single document.
type Record struct {
	ContractType      string           `json:"contract_type"`
	Entities          EntityBag        `json:"entities"`
	Clauses           []Clause         `json:"clauses"`
	ObligationsRights ObligationSet    `json:"obligations_rights"`
	RiskIndicators    RiskIndicatorSet `json:"risk_indicators"`
	Ambiguities       []Ambiguity      `json:"ambiguities"`
}
