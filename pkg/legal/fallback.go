package legal

import "github.com/athapong/contract-analyzer/pkg/analysis"

const demoSummary = "DEMO MODE: this is a sample analysis, not a review of your contract. " +
	"Configure an API key for a full legal assessment. A quick scan suggests the contract may contain unfavourable terms."

func strPtr(s string) *string { return &s }

// FallbackVerdict returns the static example review, marked as mock. The
// contract type and parties are taken from the arguments so the example reads
// against the uploaded document; everything else is fixed.
func FallbackVerdict(contractType string, record *analysis.Record, reason string) *Verdict {
	parties := []string{"Party A", "Party B"}
	if record != nil && len(record.Entities.Parties) > 0 {
		parties = append([]string(nil), record.Entities.Parties[:min(2, len(record.Entities.Parties))]...)
	}

	return &Verdict{
		LanguageDetected: "English",
		ContractInfo: ContractInfo{
			Type:         contractType,
			Parties:      parties,
			Duration:     strPtr("Not specified"),
			Jurisdiction: "India",
			GoverningLaw: "Indian Contract Act, 1872",
			KeyAmounts:   []string{},
		},
		RiskAssessment: RiskAssessment{
			CompositeScore: 65,
			RiskLevel:      "Medium-High",
			Summary:        demoSummary,
			KeyRisks: []KeyRisk{
				{
					Clause:       "Indemnity Clause",
					RiskLevel:    "High",
					Category:     "Indemnity",
					Explanation:  "The indemnity appears broad enough to make you liable even for the other party's negligence.",
					LegalConcern: "May offend principles of natural justice under the Indian Contract Act",
					Suggestion:   "Limit indemnity to direct losses caused by your gross negligence or wilful misconduct and cap liability.",
					Priority:     "Critical",
				},
				{
					Clause:       "Termination Terms",
					RiskLevel:    "High",
					Category:     "Termination",
					Explanation:  "Notice periods are unequal: the other party can exit quickly while you stay locked in.",
					LegalConcern: "Could be treated as unconscionable under Section 23 of the Indian Contract Act",
					Suggestion:   "Ask for equal notice periods of 30 to 60 days for both parties.",
					Priority:     "Critical",
				},
				{
					Clause:       "Non-Compete Restriction",
					RiskLevel:    "High",
					Category:     "Non-compete",
					Explanation:  "The non-compete is too wide in scope and duration and restricts future business.",
					LegalConcern: "Likely void as a restraint of trade under Section 27 of the Indian Contract Act",
					Suggestion:   "Limit it to one year, a defined geography and a narrow business line, or use non-solicitation instead.",
					Priority:     "High",
				},
				{
					Clause:       "Payment Terms",
					RiskLevel:    "Medium",
					Category:     "Other",
					Explanation:  "Long payment cycles favour the other party.",
					LegalConcern: "None specific",
					Suggestion:   "Negotiate milestone payments or a 15 to 30 day payment cycle.",
					Priority:     "Medium",
				},
			},
		},
		ClauseBreakdown: []ClauseReview{
			{
				ClauseNumber:          "1",
				ClauseName:            "Scope of Services",
				OriginalText:          "Services to be provided as per agreement...",
				SimplifiedExplanation: "Defines the work you must deliver. Make sure it is specific and achievable.",
				Obligations:           []string{"Provide defined services", "Meet quality standards"},
				Rights:                []string{"Receive payment upon completion"},
				RedFlags:              []string{"Vague scope may lead to scope creep"},
			},
			{
				ClauseNumber:          "2",
				ClauseName:            "Confidentiality",
				OriginalText:          "Both parties shall maintain confidentiality...",
				SimplifiedExplanation: "You must keep business secrets private. This is standard.",
				Obligations:           []string{"Protect confidential information", "Return materials on termination"},
				Rights:                []string{"Confidential treatment of your own information"},
				RedFlags:              []string{"Check the duration; two to three years is typical"},
			},
		},
		ComplianceCheck: []ComplianceItem{
			{
				Law:            "Indian Contract Act, 1872",
				Section:        "Section 27 (Restraint of Trade)",
				Status:         "Warning",
				Notes:          "The non-compete may be too restrictive to be enforceable",
				Recommendation: "Narrow the scope and duration of the non-compete",
			},
			{
				Law:            "Payment of Wages Act, 1936",
				Section:        "General",
				Status:         "Unclear",
				Notes:          "For employment contracts, check wage payment timelines",
				Recommendation: "Ensure monthly payment requirements are met",
			},
		},
		UnfavorableTerms: []UnfavorableTerm{
			{
				Term:                "Unlimited Liability",
				Impact:              "Unlimited damages could put the business at risk",
				NegotiationStrategy: "Insist on a liability cap such as twice the contract value and exclude consequential damages",
			},
			{
				Term:                "Automatic Renewal",
				Impact:              "The contract renews unless a long notice is given, locking in unfavourable terms",
				NegotiationStrategy: "Switch to opt-in renewal or reduce the notice period to 30 to 60 days",
			},
		},
		MissingProtections: []string{
			"Force majeure clause",
			"Clear dispute resolution mechanism, preferably arbitration",
			"Intellectual property ownership",
			"Data protection and privacy provisions",
			"Exit and transition assistance terms",
		},
		OverallRecommendation: OverallRecommendation{
			Verdict:   "Negotiate",
			Reasoning: "Several high-risk clauses favour the other party and should be amended before signing.",
			PriorityNegotiations: []string{
				"Equal termination rights and notice periods",
				"Capped and limited indemnity obligations",
				"Reasonable non-compete scope and duration",
			},
		},
		Mock:  true,
		Error: reason,
	}
}
