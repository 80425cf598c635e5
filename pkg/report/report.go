package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/athapong/contract-analyzer/pkg/analysis"
	"github.com/athapong/contract-analyzer/pkg/legal"
	"github.com/athapong/contract-analyzer/pkg/loader"
)

// Report is the persisted outcome of reviewing one contract.
type Report struct {
	ID           string           `json:"id"`
	Source       string           `json:"source"`
	Format       loader.Format    `json:"format"`
	Characters   int              `json:"characters"`
	DetectedType string           `json:"detected_type"`
	Record       *analysis.Record `json:"structural_analysis"`
	Verdict      *legal.Verdict   `json:"legal_analysis,omitempty"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

// New builds a report for a loaded document. verdict may be nil when only the
// structural analysis was requested.
func New(doc *loader.Document, record *analysis.Record, verdict *legal.Verdict) *Report {
	r := &Report{
		ID:          uuid.NewString(),
		Record:      record,
		Verdict:     verdict,
		GeneratedAt: time.Now().UTC(),
	}
	if doc != nil {
		r.Source = doc.Name
		r.Format = doc.Format
		r.Characters = len([]rune(doc.Text))
	}
	if record != nil {
		r.DetectedType = record.ContractType
	}
	return r
}

// Mock reports whether the verdict came from the static fallback.
func (r *Report) Mock() bool {
	return r.Verdict != nil && r.Verdict.Mock
}
