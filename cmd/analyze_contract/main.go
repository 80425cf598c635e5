package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/athapong/contract-analyzer/pkg/loader"
	"github.com/athapong/contract-analyzer/pkg/review"
	"github.com/athapong/contract-analyzer/services"
)

var (
	input        = flag.String("input", "", "Contract file, or directory of contracts, to analyze")
	outputDir    = flag.String("output-dir", "", "Directory for JSON reports (defaults to OUTPUT_DIR)")
	contractType = flag.String("contract-type", "", "Contract type to assume instead of auto-detection")
	nlpOnly      = flag.Bool("nlp-only", false, "Skip the legal verdict and report the structural analysis only")
	envFile      = flag.String("env", ".env", "Path to environment file")
	logLevel     = flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	// Configure logging
	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if *input == "" {
		logger.Fatal("Input file or directory must be specified")
	}

	if err := godotenv.Load(*envFile); err != nil {
		logger.WithError(err).Debugf("No env file loaded from %s", *envFile)
	}

	settings, err := services.LoadSettings()
	if err != nil {
		logger.Fatalf("Invalid settings: %v", err)
	}
	if *outputDir != "" {
		settings.OutputDir = *outputDir
	}

	svc, err := review.NewFromSettings(settings, logger)
	if err != nil {
		logger.Fatalf("Failed to set up review service: %v", err)
	}

	files, err := inputFiles(svc.Loader(), *input)
	if err != nil {
		logger.Fatalf("Failed to read input: %v", err)
	}
	if len(files) == 0 {
		logger.Fatal("No supported input files found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("Analyzing %d contract(s)...", len(files))
	results, err := svc.ReviewBatch(ctx, files, review.Options{
		ContractType:  *contractType,
		StructureOnly: *nlpOnly,
		Save:          true,
	})
	if err != nil {
		logger.Fatalf("Batch interrupted: %v", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		fields := logrus.Fields{
			"file":          r.Path,
			"contract_type": r.Report.DetectedType,
			"clauses":       len(r.Report.Record.Clauses),
			"risks":         len(r.Report.Record.RiskIndicators),
			"report":        r.Location,
		}
		if r.Report.Verdict != nil {
			fields["composite_score"] = r.Report.Verdict.RiskAssessment.CompositeScore
			fields["mock"] = r.Report.Verdict.Mock
		}
		logger.WithFields(fields).Info("Contract analyzed")
	}

	logger.Infof("Reports written to %s (%d succeeded, %d failed)", settings.OutputDir, len(results)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// inputFiles expands a directory into the supported contract files it contains.
func inputFiles(ld *loader.Loader, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && ld.Supports(p) {
			files = append(files, p)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}
