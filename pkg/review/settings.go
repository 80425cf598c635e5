package review

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/contract-analyzer/pkg/analysis"
	"github.com/athapong/contract-analyzer/pkg/legal"
	"github.com/athapong/contract-analyzer/pkg/lexicon"
	"github.com/athapong/contract-analyzer/pkg/loader"
	"github.com/athapong/contract-analyzer/pkg/report"
	"github.com/athapong/contract-analyzer/pkg/retry"
	"github.com/athapong/contract-analyzer/services"
)

// NewFromSettings builds a Service from process settings. A missing API key
// is not an error: the service then produces sample verdicts.
func NewFromSettings(s *services.Settings, logger *logrus.Logger) (*Service, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	backend, err := analysis.NewBackend(s.NLPBackend)
	if err != nil {
		return nil, err
	}

	cfg := legal.DefaultConfig()
	cfg.Model = s.LLMModel
	cfg.Temperature = s.LLMTemperature
	cfg.Timeout = s.LLMTimeout
	cfg.Retry = retry.DefaultConfig()
	cfg.Retry.MaxAttempts = s.LLMMaxAttempts
	cfg.Retry.Logger = logger

	var legalAnalyzer *legal.Analyzer
	client, err := services.NewLLMClient(s)
	switch {
	case err == nil:
		legalAnalyzer = legal.NewAnalyzer(client, cfg, legal.WithLogger(logger))
	case errors.Is(err, services.ErrNoCredentials):
		logger.WithField("provider", s.LLMProvider).Warn("No LLM credentials configured, verdicts will be sample data")
		legalAnalyzer = legal.NewAnalyzer(nil, cfg, legal.WithLogger(logger))
	default:
		return nil, err
	}

	return NewService(
		loader.New(loader.WithMaxBytes(s.MaxFileBytes()), loader.WithLogger(logger)),
		analysis.NewAnalyzer(lexicon.Default(), backend, logger),
		legalAnalyzer,
		WithStore(report.NewJSONReportStore(s.OutputDir, s.ReportPrefix)),
		WithLogger(logger),
	), nil
}
