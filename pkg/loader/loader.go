package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/athapong/contract-analyzer/pkg/metrics"
)

var (
	// ErrUnsupportedFormat is returned for any extension outside pdf, docx and txt.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrDecode is returned when content of a supported format cannot be decoded.
	ErrDecode = errors.New("failed to decode document")
	// ErrTooLarge is returned when the input exceeds the configured size limit.
	ErrTooLarge = errors.New("document exceeds size limit")
)

// Format identifies a supported document encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// DefaultMaxBytes mirrors the 10 MB upload limit of the web front end.
const DefaultMaxBytes int64 = 10 << 20

// Document is the plain text of one uploaded contract.
type Document struct {
	Name   string `json:"name"`
	Format Format `json:"format"`
	Text   string `json:"-"`
}

// Extractor turns the raw bytes of one format into plain text.
type Extractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
	Format() Format
}

// Loader dispatches on file extension to the matching Extractor.
type Loader struct {
	extractors map[Format]Extractor
	supported  mapset.Set[string]
	maxBytes   int64
	logger     *logrus.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithMaxBytes sets the size limit; zero or negative disables it.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

// WithLogger replaces the default JSON logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loader for pdf, docx and txt.
func New(opts ...Option) *Loader {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	l := &Loader{
		extractors: make(map[Format]Extractor),
		supported:  mapset.NewSet[string](),
		maxBytes:   DefaultMaxBytes,
		logger:     logger,
	}
	for _, e := range []Extractor{NewPDFExtractor(), NewDOCXExtractor(), NewTextExtractor()} {
		l.extractors[e.Format()] = e
		l.supported.Add("." + string(e.Format()))
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Supports reports whether the file name carries a supported extension.
func (l *Loader) Supports(name string) bool {
	return l.supported.Contains(strings.ToLower(filepath.Ext(name)))
}

// DetectFormat maps a file name to its Format.
func (l *Loader) DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !l.supported.Contains(ext) {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	return Format(strings.TrimPrefix(ext, ".")), nil
}

// Load reads and extracts the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	// Reject by extension before touching the file.
	if _, err := l.DetectFormat(path); err != nil {
		metrics.DocumentsLoaded.WithLabelValues("unknown", "unsupported").Inc()
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if l.maxBytes > 0 && info.Size() > l.maxBytes {
		return nil, errors.Wrapf(ErrTooLarge, "%s is %d bytes, limit %d", filepath.Base(path), info.Size(), l.maxBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return l.LoadBytes(ctx, filepath.Base(path), content)
}

// LoadBytes extracts text from an in-memory upload named name.
func (l *Loader) LoadBytes(ctx context.Context, name string, content []byte) (*Document, error) {
	format, err := l.DetectFormat(name)
	if err != nil {
		metrics.DocumentsLoaded.WithLabelValues("unknown", "unsupported").Inc()
		return nil, err
	}
	if l.maxBytes > 0 && int64(len(content)) > l.maxBytes {
		metrics.DocumentsLoaded.WithLabelValues(string(format), "too_large").Inc()
		return nil, errors.Wrapf(ErrTooLarge, "%s is %d bytes, limit %d", name, len(content), l.maxBytes)
	}

	text, err := l.extractors[format].Extract(ctx, content)
	if err != nil {
		metrics.DocumentsLoaded.WithLabelValues(string(format), "error").Inc()
		l.logger.WithError(err).WithFields(logrus.Fields{
			"document": name,
			"format":   format,
		}).Warn("Document extraction failed")
		return nil, err
	}

	metrics.DocumentsLoaded.WithLabelValues(string(format), "success").Inc()
	l.logger.WithFields(logrus.Fields{
		"document":   name,
		"format":     format,
		"bytes":      len(content),
		"characters": len(text),
	}).Debug("Document loaded")

	return &Document{Name: name, Format: format, Text: text}, nil
}
