// Package report runs configured queries against a survey and writes their
// results and charts.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vegasq/surveystat/chart"
	"github.com/vegasq/surveystat/config"
	"github.com/vegasq/surveystat/output"
	"github.com/vegasq/surveystat/survey"
)

// ErrNoSurvey is returned when Run is given a nil survey
var ErrNoSurvey = errors.New("report: no survey")

// Run executes q against s. The formatted result goes to q.Output when set and
// to w otherwise; a text chart is always written to w.
func Run(s *survey.Survey, q config.Query, w io.Writer) error {
	if s == nil {
		return ErrNoSurvey
	}
	if err := q.Validate(); err != nil {
		return err
	}
	start := time.Now()

	dest := w
	var file *os.File
	if q.Output != "" {
		f, err := os.Create(q.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		file = f
		dest = f
	}

	err := run(s, q, w, dest)
	if file != nil {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: failed to close output file: %w", q.Name, cerr)
		}
	}
	if err != nil {
		return err
	}

	slog.Debug("report: query done",
		"name", q.Name,
		"kind", string(q.Kind),
		"column", q.Column,
		"filter", q.SurveyFilter().String(),
		"output", q.Output,
		"elapsed", time.Since(start),
	)
	return nil
}

// run executes q, writing formatted rows to dest and text charts to w
func run(s *survey.Survey, q config.Query, w, dest io.Writer) error {
	formatter, err := output.New(q.Format, dest)
	if err != nil {
		return err
	}

	var rows []map[string]interface{}
	switch q.Kind {
	case config.KindDistribution, config.KindSalary:
		var res *survey.Result
		if q.Kind == config.KindSalary {
			res, err = s.SalaryDistribution(q.Column, q.Options()...)
		} else {
			res, err = s.Distribution(q.Column, q.Options()...)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", q.Name, err)
		}
		formatter.SetColumns(output.ResultColumns)
		rows = output.ResultRows(res)
		if q.Chart != nil {
			if err := chart.Render(w, res, *q.Chart); err != nil {
				return fmt.Errorf("%s: %w", q.Name, err)
			}
		}

	case config.KindUnique:
		tokens, err := s.UniqueTokens(q.Column, q.Separator)
		if err != nil {
			return fmt.Errorf("%s: %w", q.Name, err)
		}
		formatter.SetColumns([]string{output.ColumnToken})
		rows = output.TokenRows(tokens)

	case config.KindCross:
		results, err := s.CrossDistribution(q.By, q.Column, q.Options()...)
		if err != nil {
			return fmt.Errorf("%s: %w", q.Name, err)
		}
		formatter.SetColumns(output.CrossColumns)
		rows = output.CrossRows(results)
		if q.Chart != nil {
			for i, cr := range results {
				if err := chart.Render(w, cr.Result, groupChart(*q.Chart, cr, i)); err != nil {
					return fmt.Errorf("%s: %s: %w", q.Name, cr.Token, err)
				}
			}
		}
	}

	if err := formatter.Format(rows); err != nil {
		return fmt.Errorf("%s: failed to format result: %w", q.Name, err)
	}
	slog.Debug("report: formatted rows", "name", q.Name, "rows", len(rows))
	return nil
}

// RunAll runs every query of f in order and stops at the first error.
func RunAll(s *survey.Survey, f *config.File, w io.Writer) error {
	for _, q := range f.Queries {
		if err := Run(s, q, w); err != nil {
			return err
		}
	}
	return nil
}

// groupChart derives the chart of one cross group. Image paths get the group
// index before the extension.
func groupChart(cfg chart.Config, cr survey.CrossResult, index int) chart.Config {
	title := cfg.Title
	if title == "" {
		title = chart.DefaultTitle
	}
	cfg.Title = fmt.Sprintf("%s: %s", title, cr.Token)

	if cfg.Path != "" {
		ext := filepath.Ext(cfg.Path)
		cfg.Path = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(cfg.Path, ext), index+1, ext)
	}
	return cfg
}
