package review

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/athapong/contract-analyzer/pkg/analysis"
	"github.com/athapong/contract-analyzer/pkg/legal"
	"github.com/athapong/contract-analyzer/pkg/lexicon"
	"github.com/athapong/contract-analyzer/pkg/loader"
	"github.com/athapong/contract-analyzer/pkg/metrics"
	"github.com/athapong/contract-analyzer/pkg/report"
)

const defaultBatchSize = 4

// Options controls a single review.
type Options struct {
	// ContractType overrides the detected type in the model prompt. Empty means auto-detect.
	ContractType string
	// StructureOnly skips the model verdict.
	StructureOnly bool
	// Save writes the report to the configured store.
	Save bool
}

// Result is the outcome of one document in a batch.
type Result struct {
	Path     string
	Report   *report.Report
	Location string
	Err      error
}

// Service runs load, structural analysis, legal verdict and persistence for contracts.
type Service struct {
	loader    *loader.Loader
	analyzer  *analysis.Analyzer
	legal     *legal.Analyzer
	store     report.ReportStore
	logger    *logrus.Logger
	batchSize int
}

// Option configures a Service.
type Option func(*Service)

// WithStore sets where reports are saved.
func WithStore(store report.ReportStore) Option {
	return func(s *Service) { s.store = store }
}

// WithLogger replaces the default JSON logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBatchSize bounds how many documents ReviewBatch reviews at once.
func WithBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewService wires the pipeline stages. ld and an may be nil for defaults;
// a nil legalAnalyzer runs without a model and always yields sample verdicts.
func NewService(ld *loader.Loader, an *analysis.Analyzer, legalAnalyzer *legal.Analyzer, opts ...Option) *Service {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	s := &Service{
		loader:    ld,
		analyzer:  an,
		legal:     legalAnalyzer,
		logger:    logger,
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		s.loader = loader.New(loader.WithLogger(s.logger))
	}
	if s.analyzer == nil {
		s.analyzer = analysis.NewAnalyzer(lexicon.Default(), nil, s.logger)
	}
	if s.legal == nil {
		s.legal = legal.NewAnalyzer(nil, legal.DefaultConfig(), legal.WithLogger(s.logger))
	}
	return s
}

// Loader returns the document loader.
func (s *Service) Loader() *loader.Loader {
	return s.loader
}

// Structure returns the structural record for text without calling the model.
func (s *Service) Structure(ctx context.Context, text string) (*analysis.Record, error) {
	return s.analyzer.Analyze(ctx, text)
}

// ReviewFile loads and reviews the contract at path.
func (s *Service) ReviewFile(ctx context.Context, path string, opts Options) (*report.Report, string, error) {
	doc, err := s.loader.Load(ctx, path)
	if err != nil {
		metrics.ReviewErrors.WithLabelValues("load").Inc()
		return nil, "", err
	}
	return s.Review(ctx, doc, opts)
}

// ReviewText reviews pasted contract text. name labels the report.
func (s *Service) ReviewText(ctx context.Context, name, text string, opts Options) (*report.Report, string, error) {
	if name == "" {
		name = "inline.txt"
	}
	return s.Review(ctx, &loader.Document{Name: name, Format: loader.FormatTXT, Text: text}, opts)
}

// Review analyses a loaded document and, when asked, saves the report. The
// returned location is empty unless the report was saved.
func (s *Service) Review(ctx context.Context, doc *loader.Document, opts Options) (*report.Report, string, error) {
	if doc == nil {
		return nil, "", errors.New("cannot review nil document")
	}
	log := s.logger.WithFields(logrus.Fields{
		"document": doc.Name,
		"format":   doc.Format,
	})

	record, err := s.analyzer.Analyze(ctx, doc.Text)
	if err != nil {
		metrics.ReviewErrors.WithLabelValues("analysis").Inc()
		return nil, "", errors.Wrapf(err, "analyze %s", doc.Name)
	}

	var verdict *legal.Verdict
	switch {
	case opts.StructureOnly:
	case strings.TrimSpace(doc.Text) == "":
		log.Warn("Document has no text, skipping model verdict")
		verdict = legal.FallbackVerdict(contractTypeFor(opts, record), record, "no text extracted from document")
	default:
		verdict = s.legal.Analyze(ctx, doc.Text, contractTypeFor(opts, record), record)
	}

	r := report.New(doc, record, verdict)
	if !opts.Save {
		return r, "", nil
	}
	if s.store == nil {
		return r, "", errors.New("no report store configured")
	}

	location, err := s.store.Save(ctx, r)
	if err != nil {
		metrics.ReviewErrors.WithLabelValues("save").Inc()
		return r, "", err
	}
	log.WithField("report", location).Info("Report saved")
	return r, location, nil
}

// ReviewBatch reviews files concurrently, at most batchSize at a time.
// Per-file failures are reported in the matching Result; the returned error
// is set only when ctx ends before every file was started.
func (s *Service) ReviewBatch(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	s.logger.WithField("document_count", len(paths)).Info("Starting batch review")
	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(s.batchSize)

	started := 0
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			timer := prometheus.NewTimer(metrics.AnalysisDuration.WithLabelValues("review"))
			r, location, err := s.ReviewFile(ctx, path, opts)
			timer.ObserveDuration()

			results[i] = Result{Path: path, Report: r, Location: location, Err: err}
			if err != nil {
				s.logger.WithError(err).WithField("path", path).Error("Failed to review document")
			}
			return nil
		})
	}
	_ = g.Wait()

	if started < len(paths) {
		return results[:started], ctx.Err()
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.WithFields(logrus.Fields{
		"document_count": len(paths),
		"failed":         failed,
	}).Info("Batch review completed")
	return results, nil
}

func contractTypeFor(opts Options, record *analysis.Record) string {
	if opts.ContractType != "" {
		return opts.ContractType
	}
	return record.ContractType
}
