package lexicon

// Category is a named group of keyword phrases. Phrases are stored lower-cased.
type Category struct {
	Name     string
	Keywords []string
}

// Lexicon holds every keyword table the analysis components read from.
// A Lexicon is treated as immutable once built; Default returns a fresh copy
// on every call so callers can never alter another caller's tables.
type Lexicon struct {
	ContractTypes   []Category
	DefaultType     string
	RiskCategories  []Category
	ObligationCues  []string
	RightCues       []string
	ProhibitionCues []string
	VaguePhrases    []string
	Locations       []string
}

const (
	TypeEmployment  = "Employment"
	TypeVendor      = "Vendor"
	TypeService     = "Service"
	TypeLease       = "Lease"
	TypePartnership = "Partnership"
	TypeNDA         = "NDA"
	TypeGeneral     = "General"
)

const (
	RiskIndemnity    = "indemnity"
	RiskTermination  = "termination"
	RiskPenalty      = "penalty"
	RiskNonCompete   = "non_compete"
	RiskAutoRenewal  = "auto_renewal"
	RiskJurisdiction = "jurisdiction"
	RiskIPTransfer   = "ip_transfer"
)

// Default returns the Indian SME contract lexicon.
func Default() Lexicon {
	return Lexicon{
		ContractTypes: []Category{
			{Name: TypeEmployment, Keywords: []string{"employment", "employee", "employer", "salary", "designation", "probation", "resignation"}},
			{Name: TypeVendor, Keywords: []string{"vendor", "supplier", "procurement", "delivery", "purchase order"}},
			{Name: TypeService, Keywords: []string{"service agreement", "services", "service provider", "deliverables", "scope of work"}},
			{Name: TypeLease, Keywords: []string{"lease", "lessor", "lessee", "rent", "premises", "tenancy"}},
			{Name: TypePartnership, Keywords: []string{"partnership", "partner", "profit sharing", "capital contribution", "partnership deed"}},
			{Name: TypeNDA, Keywords: []string{"non-disclosure", "confidential information", "confidentiality", "proprietary"}},
		},
		DefaultType: TypeGeneral,
		RiskCategories: []Category{
			{Name: RiskIndemnity, Keywords: []string{"indemnify", "indemnification", "hold harmless", "defend"}},
			{Name: RiskTermination, Keywords: []string{"terminate", "termination", "cancel", "cancellation"}},
			{Name: RiskPenalty, Keywords: []string{"penalty", "liquidated damages", "fine", "forfeiture"}},
			{Name: RiskNonCompete, Keywords: []string{"non-compete", "non compete", "restrictive covenant", "competition"}},
			{Name: RiskAutoRenewal, Keywords: []string{"auto-renew", "automatic renewal", "automatically renew"}},
			{Name: RiskJurisdiction, Keywords: []string{"jurisdiction", "governing law", "arbitration", "dispute resolution"}},
			{Name: RiskIPTransfer, Keywords: []string{"intellectual property", "ip rights", "copyright", "patent", "trademark"}},
		},
		ObligationCues:  []string{"shall", "must", "will", "agrees to", "undertakes to", "required to"},
		RightCues:       []string{"may", "entitled to", "has the right", "can", "permitted to"},
		ProhibitionCues: []string{"shall not", "must not", "prohibited", "forbidden", "may not"},
		VaguePhrases: []string{
			"reasonable", "best efforts", "as soon as possible", "promptly",
			"appropriate", "sufficient", "adequate", "material", "substantial",
		},
		Locations: []string{
			"Mumbai", "Delhi", "Bangalore", "Bengaluru", "Chennai", "Kolkata", "Hyderabad",
			"Pune", "Ahmedabad", "Jaipur", "Maharashtra", "Karnataka", "Tamil Nadu", "Gujarat",
		},
	}
}

// RiskCategoryNames lists the risk categories in declaration order.
func (l Lexicon) RiskCategoryNames() []string {
	names := make([]string, 0, len(l.RiskCategories))
	for _, c := range l.RiskCategories {
		names = append(names, c.Name)
	}
	return names
}

// ContractTypeNames lists the contract categories in declaration order followed by the default label.
func (l Lexicon) ContractTypeNames() []string {
	names := make([]string, 0, len(l.ContractTypes)+1)
	for _, c := range l.ContractTypes {
		names = append(names, c.Name)
	}
	return append(names, l.DefaultType)
}
