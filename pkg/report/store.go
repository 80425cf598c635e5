package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a report file does not exist.
var ErrNotFound = errors.New("report not found")

// ReportStore persists reports.
type ReportStore interface {
	// Save writes the report and returns where it was stored.
	Save(ctx context.Context, r *Report) (string, error)

	// Load reads a report previously returned by Save.
	Load(ctx context.Context, location string) (*Report, error)

	// List returns stored report locations, oldest first.
	List(ctx context.Context) ([]string, error)
}

// JSONReportStore keeps one indented JSON file per report in a directory.
type JSONReportStore struct {
	dir    string
	prefix string
}

// NewJSONReportStore creates a store rooted at dir. Files are named
// <prefix>_<YYYYmmdd_HHMMSS>_<id8>.json.
func NewJSONReportStore(dir, prefix string) *JSONReportStore {
	if prefix == "" {
		prefix = "contract_analysis"
	}
	return &JSONReportStore{dir: dir, prefix: prefix}
}

// Dir returns the output directory.
func (s *JSONReportStore) Dir() string {
	return s.dir
}

// FileName returns the file name Save uses for r.
func (s *JSONReportStore) FileName(r *Report) string {
	id := strings.ReplaceAll(r.ID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s_%s_%s.json", s.prefix, r.GeneratedAt.Format("20060102_150405"), id)
}

// Save stores the report as JSON
func (s *JSONReportStore) Save(ctx context.Context, r *Report) (string, error) {
	if r == nil {
		return "", errors.New("cannot save nil report")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create report directory %s", s.dir)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode report")
	}

	path := filepath.Join(s.dir, s.FileName(r))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "write report %s", path)
	}
	return path, nil
}

// Load reads a report from a JSON file. A bare file name is resolved inside the store directory.
func (s *JSONReportStore) Load(ctx context.Context, location string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(location) && filepath.Dir(location) == "." {
		location = filepath.Join(s.dir, location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", location)
		}
		return nil, errors.Wrapf(err, "read report %s", location)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrapf(err, "decode report %s", location)
	}
	return &r, nil
}

// List returns the report files carrying the store prefix. The timestamp in
// the name orders them chronologically.
func (s *JSONReportStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, s.prefix+"_*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "list reports")
	}
	sort.Strings(matches)
	return matches, nil
}
