package analysis

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/athapong/contract-analyzer/pkg/lexicon"
	"github.com/athapong/contract-analyzer/pkg/metrics"
)

// Analyzer runs every structural analysis component over one text. It keeps
// no per-document state and may be shared between goroutines.
type Analyzer struct {
	lex     lexicon.Lexicon
	backend Backend
	logger  *logrus.Logger
}

// NewAnalyzer creates an analyzer over the given keyword tables. A nil backend
// selects the pattern backend and a nil logger a JSON logger.
func NewAnalyzer(lex lexicon.Lexicon, backend Backend, logger *logrus.Logger) *Analyzer {
	if backend == nil {
		backend = PatternBackend{}
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Analyzer{
		lex:     lex,
		backend: backend,
		logger:  logger,
	}
}

// Backend returns the NLP backend selected at construction.
func (a *Analyzer) Backend() Backend {
	return a.backend
}

// Lexicon returns the keyword tables the analyzer was built with.
func (a *Analyzer) Lexicon() lexicon.Lexicon {
	return a.lex
}

// Analyze builds the structural analysis record for text. Empty results are
// not errors; only a cancelled context is.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Record, error) {
	timer := prometheus.NewTimer(metrics.AnalysisDuration.WithLabelValues("total"))
	defer timer.ObserveDuration()

	record := &Record{}
	stages := []struct {
		name string
		run  func()
	}{
		{"classifier", func() { record.ContractType = Classify(a.lex, text) }},
		{"segmenter", func() { record.Clauses = Segment(text) }},
		{"entities", func() { record.Entities = ExtractEntities(a.lex, a.backend, text) }},
		{"obligations", func() { record.ObligationsRights = ClassifySentences(a.lex, a.backend, text) }},
		{"risks", func() { record.RiskIndicators = DetectRisks(a.lex, text) }},
		{"ambiguities", func() { record.Ambiguities = DetectAmbiguities(a.lex, text) }},
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stageTimer := prometheus.NewTimer(metrics.AnalysisDuration.WithLabelValues(stage.name))
		stage.run()
		stageTimer.ObserveDuration()
	}

	a.record(record)

	a.logger.WithFields(logrus.Fields{
		"backend":       a.backend.Name(),
		"contract_type": record.ContractType,
		"clauses":       len(record.Clauses),
		"parties":       len(record.Entities.Parties),
		"risks":         len(record.RiskIndicators),
		"ambiguities":   len(record.Ambiguities),
		"obligations":   len(record.ObligationsRights.Obligations),
		"rights":        len(record.ObligationsRights.Rights),
		"prohibitions":  len(record.ObligationsRights.Prohibitions),
	}).Info("Structural analysis completed")

	return record, nil
}

func (a *Analyzer) record(r *Record) {
	metrics.ContractsClassified.WithLabelValues(r.ContractType).Inc()
	for category, values := range r.Entities.Categories() {
		if len(values) > 0 {
			metrics.EntitiesExtracted.WithLabelValues(category).Add(float64(len(values)))
		}
	}
	for category := range r.RiskIndicators {
		metrics.RiskIndicatorsDetected.WithLabelValues(category).Inc()
	}
}
