package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vegasq/surveystat/chart"
	"github.com/vegasq/surveystat/output"
	"github.com/vegasq/surveystat/survey"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedConfig is returned for files that are neither YAML nor TOML
	ErrUnsupportedConfig = errors.New("unsupported config file")
)

// Kind selects the operation a query runs.
type Kind string

const (
	KindDistribution Kind = "distribution"
	KindSalary       Kind = "salary"
	KindUnique       Kind = "unique"
	KindCross        Kind = "cross"
)

// Kinds lists the accepted query kinds
var Kinds = []Kind{KindDistribution, KindSalary, KindUnique, KindCross}

// Filter match policies
const (
	MatchExact     = "exact"
	MatchSubstring = "substring"
)

// File is a batch of queries over one dataset.
type File struct {
	// Input is a file path or glob
	Input string `yaml:"input" toml:"input"`

	// Keep restricts the table to these columns before cleaning
	Keep []string `yaml:"keep" toml:"keep"`

	// Separator is the default token separator for all queries
	Separator string `yaml:"separator" toml:"separator"`

	Queries []Query `yaml:"queries" toml:"queries"`
}

// FilterSpec restricts a query to matching rows.
type FilterSpec struct {
	Column string `yaml:"column" toml:"column"`
	Value  string `yaml:"value" toml:"value"`

	// Match is "exact" (token membership, the default) or "substring"
	Match string `yaml:"match" toml:"match"`
}

// Query is one distribution request.
type Query struct {
	Name   string `yaml:"name" toml:"name"`
	Kind   Kind   `yaml:"kind" toml:"kind"`
	Column string `yaml:"column" toml:"column"`

	// By is the grouping column of a cross query
	By string `yaml:"by" toml:"by"`

	// Top keeps the top+1 largest entries; nil keeps everything
	Top *int `yaml:"top" toml:"top"`

	Percent      bool        `yaml:"percent" toml:"percent"`
	Separator    string      `yaml:"separator" toml:"separator"`
	Filter       *FilterSpec `yaml:"filter" toml:"filter"`
	SalaryColumn string      `yaml:"salary_column" toml:"salary_column"`

	// Format is an output format name; empty means table
	Format string `yaml:"format" toml:"format"`

	// Output is a file path for the formatted result; empty writes to stdout
	Output string `yaml:"output" toml:"output"`

	Chart *chart.Config `yaml:"chart" toml:"chart"`
}

// Load reads and validates the config file at path. Queries without their
// own separator inherit the file's.
func Load(path string) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".toml":
	default:
		return nil, fmt.Errorf("%w: %s (expected .yaml, .yml or .toml)", ErrUnsupportedConfig, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var f File
	if ext == ".toml" {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	for i := range f.Queries {
		q := &f.Queries[i]
		if q.Name == "" {
			q.Name = fmt.Sprintf("query-%d", i+1)
		}
		if q.Kind == "" {
			q.Kind = KindDistribution
		}
		if q.Separator == "" {
			q.Separator = f.Separator
		}
	}
}

// Validate checks every query and reports the first problem found.
func (f *File) Validate() error {
	if len(f.Queries) == 0 {
		return fmt.Errorf("%w: no queries", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(f.Queries))
	for i, q := range f.Queries {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("query %d: %w", i+1, err)
		}
		if q.Name != "" {
			if seen[q.Name] {
				return fmt.Errorf("query %d: %w: duplicate name %q", i+1, ErrInvalidConfig, q.Name)
			}
			seen[q.Name] = true
		}
	}
	return nil
}

// Validate checks a single query.
func (q Query) Validate() error {
	if !validKind(q.Kind) {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, q.Kind)
	}
	if q.Column == "" {
		return fmt.Errorf("%w: column is required", ErrInvalidConfig)
	}
	if q.Kind == KindCross && q.By == "" {
		return fmt.Errorf("%w: cross query needs 'by'", ErrInvalidConfig)
	}
	if q.Filter != nil {
		if q.Filter.Column == "" {
			return fmt.Errorf("%w: filter column is required", ErrInvalidConfig)
		}
		switch strings.ToLower(q.Filter.Match) {
		case "", MatchExact, MatchSubstring:
		default:
			return fmt.Errorf("%w: unknown filter match %q", ErrInvalidConfig, q.Filter.Match)
		}
	}
	if _, err := output.New(q.Format, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if q.Chart != nil {
		if q.Kind == KindUnique {
			return fmt.Errorf("%w: unique query cannot be charted", ErrInvalidConfig)
		}
		if err := q.Chart.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func validKind(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// SurveyFilter converts the query filter; without one every row matches
func (q Query) SurveyFilter() survey.Filter {
	if q.Filter == nil {
		return survey.NoFilter()
	}
	if strings.EqualFold(q.Filter.Match, MatchSubstring) {
		return survey.Substring(q.Filter.Column, q.Filter.Value)
	}
	return survey.ExactToken(q.Filter.Column, q.Filter.Value)
}

// Options builds the survey options for the query.
func (q Query) Options() []survey.Option {
	opts := []survey.Option{
		survey.WithSeparator(q.Separator),
		survey.WithFilter(q.SurveyFilter()),
	}
	if q.Top != nil {
		opts = append(opts, survey.WithTop(*q.Top))
	}
	if q.Percent {
		opts = append(opts, survey.AsPercent())
	}
	if q.SalaryColumn != "" {
		opts = append(opts, survey.WithSalaryColumn(q.SalaryColumn))
	}
	return opts
}
