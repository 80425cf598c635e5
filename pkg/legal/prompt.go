package legal

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/athapong/contract-analyzer/pkg/analysis"
)

// ExcerptLimit is the number of characters of contract text sent to the model.
const ExcerptLimit = 6000

const systemPrompt = "You are an expert Indian legal advisor who protects the interests of small and medium enterprises " +
	"in contract negotiations. Give practical, actionable advice in plain business language."

const responseSchema = `{
  "language_detected": "English/Hindi/Mixed",
  "contract_info": {
    "type": "Employment/Vendor/Service/Lease/Partnership/NDA/Other",
    "parties": ["Party 1 name", "Party 2 name"],
    "effective_date": "date or null",
    "duration": "duration or null",
    "jurisdiction": "city/state",
    "governing_law": "Indian laws referenced",
    "key_amounts": ["amounts mentioned"]
  },
  "risk_assessment": {
    "composite_score": 0-100,
    "risk_level": "Low/Medium/High",
    "summary": "two or three sentences on the main concerns",
    "key_risks": [{
      "clause": "clause name or number",
      "risk_level": "Low/Medium/High",
      "category": "Indemnity/Termination/Non-compete/IP/Penalty/Jurisdiction/Other",
      "explanation": "why it is risky for the SME",
      "legal_concern": "Indian law concern, if any",
      "suggestion": "alternative wording or negotiation point",
      "priority": "Critical/High/Medium/Low"
    }]
  },
  "clause_breakdown": [{
    "clause_number": "1.1",
    "clause_name": "Payment Terms",
    "original_text": "short excerpt",
    "simplified_explanation": "plain English explanation",
    "obligations": ["what the party must do"],
    "rights": ["what the party may do"],
    "red_flags": ["concerning aspects"]
  }],
  "compliance_check": [{
    "law": "Indian Contract Act 1872 / Shops and Establishments Act / Payment of Wages Act / ...",
    "section": "section, if applicable",
    "status": "Compliant/Warning/Non-Compliant/Unclear",
    "notes": "compliance concern or confirmation",
    "recommendation": "action needed"
  }],
  "unfavorable_terms": [{
    "term": "unfavorable term",
    "impact": "business impact on the SME",
    "negotiation_strategy": "how to negotiate it"
  }],
  "missing_protections": ["clauses that should be added"],
  "overall_recommendation": {
    "verdict": "Sign As-Is/Negotiate/Reject/Seek Legal Counsel",
    "reasoning": "why",
    "priority_negotiations": ["top three items to negotiate"]
  }
}`

var focusAreas = []string{
	"Unfair termination clauses",
	"Overly broad indemnity",
	"Unreasonable non-compete restrictions",
	"One-sided IP transfer",
	"Excessive penalties",
	"Unfavorable jurisdiction clauses",
	"Auto-renewal traps",
	"Ambiguous language",
	"Missing standard protections",
	"Compliance with Indian labour and contract law",
}

// Prompt is the message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// Excerpt returns the leading ExcerptLimit characters of text.
func Excerpt(text string) string {
	if utf8.RuneCountInString(text) <= ExcerptLimit {
		return text
	}
	return string([]rune(text)[:ExcerptLimit])
}

// BuildPrompt embeds the structural analysis and the contract excerpt into the
// review request. record may be nil.
func BuildPrompt(text, contractType string, record *analysis.Record) Prompt {
	var sb strings.Builder

	sb.WriteString("Analyse the following contract for an Indian SME. The text may be in English, Hindi or both; ")
	sb.WriteString("translate Hindi key terms to English before analysing them.\n\n")

	if record != nil {
		sb.WriteString("Pre-extracted information:\n")
		fmt.Fprintf(&sb, "- Contract type: %s\n", contractType)
		fmt.Fprintf(&sb, "- Parties: %s\n", strings.Join(record.Entities.Parties, ", "))
		fmt.Fprintf(&sb, "- Detected risk indicators: %s\n", strings.Join(record.RiskIndicators.Categories(), ", "))
		fmt.Fprintf(&sb, "- Ambiguous terms found: %d\n", len(record.Ambiguities))
		fmt.Fprintf(&sb, "- Clauses identified: %d\n", len(record.Clauses))
		if len(record.Entities.Amounts) > 0 {
			fmt.Fprintf(&sb, "- Amounts: %s\n", strings.Join(record.Entities.Amounts, ", "))
		}
		sb.WriteString("\n")
	} else if contractType != "" {
		fmt.Fprintf(&sb, "Contract type: %s\n\n", contractType)
	}

	fmt.Fprintf(&sb, "Contract text (first %d characters):\n%s\n\n", ExcerptLimit, Excerpt(text))
	sb.WriteString("Respond with a single JSON object using exactly this structure:\n")
	sb.WriteString(responseSchema)
	sb.WriteString("\n\nFocus on:\n")
	for i, area := range focusAreas {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, area)
	}

	return Prompt{System: systemPrompt, User: sb.String()}
}

var cl100k = sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
	return tiktoken.GetEncoding("cl100k_base")
})

// CountTokens measures s with the cl100k_base encoding, falling back to a
// four-characters-per-token estimate when the encoding cannot be loaded.
func CountTokens(s string) int {
	enc, err := cl100k()
	if err != nil {
		return EstimateTokens(s)
	}
	return len(enc.Encode(s, nil, nil))
}

// EstimateTokens approximates the token count without loading an encoding.
func EstimateTokens(s string) int {
	return (utf8.RuneCountInString(s) + 3) / 4
}
