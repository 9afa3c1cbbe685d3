package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/surveystat/chart"
	"github.com/vegasq/surveystat/config"
	"github.com/vegasq/surveystat/output"
	"github.com/vegasq/surveystat/reader"
	"github.com/vegasq/surveystat/report"
	"github.com/vegasq/surveystat/survey"
)

// errUsage is returned for bad flag combinations; usage has already been printed
var errUsage = errors.New("usage")

// flags holds the parsed command line
type flags struct {
	mode      string
	column    string
	by        string
	top       int
	percent   bool
	filter    string
	substring bool
	sep       string
	salaryCol string
	keep      string
	format    string

	chartPath string
	title     string
	xlabel    string
	ylabel    string
	dpi       int
	style     string

	configPath string
	schema     bool
	verbose    bool
}

func newFlagSet(f *flags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("surveystat", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.mode, "mode", "dist", "Query mode: dist, salary, unique, cross")
	fs.StringVar(&f.column, "c", "", "Column to analyse (e.g., LanguageHaveWorkedWith)")
	fs.StringVar(&f.by, "by", "", "Grouping column for cross mode")
	fs.IntVar(&f.top, "top", -1, "Keep the top N+1 entries (-1 = all)")
	fs.BoolVar(&f.percent, "percent", false, "Report percentages of qualifying respondents")
	fs.StringVar(&f.filter, "filter", "", "Only count respondents matching Column=Value")
	fs.BoolVar(&f.substring, "substring", false, "Match -filter as a substring instead of an exact token")
	fs.StringVar(&f.sep, "sep", survey.DefaultSeparator, "Token separator")
	fs.StringVar(&f.salaryCol, "salary-col", survey.ColumnConvertedCompYearly, "Salary column for salary mode")
	fs.StringVar(&f.keep, "keep", "", "Comma-separated columns to keep before cleaning")
	fs.StringVar(&f.format, "f", "table", "Output format: "+strings.Join(output.Formats, ", "))

	fs.StringVar(&f.chartPath, "chart", "", "Chart image path (.png, .jpg, .tif, .svg, .pdf, .eps), or - for a text chart")
	fs.StringVar(&f.title, "title", chart.DefaultTitle, "Chart title")
	fs.StringVar(&f.xlabel, "xlabel", chart.DefaultXLabel, "Chart x-axis label")
	fs.StringVar(&f.ylabel, "ylabel", chart.DefaultYLabel, "Chart y-axis label")
	fs.IntVar(&f.dpi, "dpi", chart.DefaultDPI, "Chart resolution for raster images")
	fs.StringVar(&f.style, "style", chart.DefaultStyle, "Chart style: "+strings.Join(chart.StyleNames(), ", "))

	fs.StringVar(&f.configPath, "config", "", "Run the queries of a YAML or TOML batch file")
	fs.BoolVar(&f.schema, "schema", false, "Show schema information instead of data")
	fs.BoolVar(&f.verbose, "v", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: surveystat [options] <survey.csv|survey.parquet>\n\n")
		fmt.Fprintf(stderr, "Distributions over multi-valued survey columns.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  surveystat -c LanguageHaveWorkedWith -top 10 -percent survey.csv\n")
		fmt.Fprintf(stderr, "  surveystat -mode salary -c LanguageHaveWorkedWith -chart salary.png survey.csv\n")
		fmt.Fprintf(stderr, "  surveystat -c LanguageHaveWorkedWith -filter \"DevType=Developer, back-end\" survey.csv.gz\n")
		fmt.Fprintf(stderr, "  surveystat -mode cross -c LanguageHaveWorkedWith -by DevType -top 4 survey.parquet\n")
		fmt.Fprintf(stderr, "  surveystat -config queries.yaml\n")
		fmt.Fprintf(stderr, "  surveystat -schema survey.csv\n")
	}
	return fs
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	var filename string
	if fs.NArg() >= 1 {
		filename = fs.Arg(0)
	}

	var err error
	switch {
	case f.schema:
		if filename == "" {
			fmt.Fprintf(stderr, "Error: missing survey file argument\n\n")
			fs.Usage()
			return 1
		}
		err = showSchema(filename, f.format, stdout, stderr)
	case f.configPath != "":
		err = runConfig(f, filename, stdout)
	default:
		if filename == "" {
			fmt.Fprintf(stderr, "Error: missing survey file argument\n\n")
			fs.Usage()
			return 1
		}
		err = runQuery(f, filename, stdout, stderr)
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 1
		}
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(stderr io.Writer, err error) {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: file '%s' not found\n", pathErr.Path)
		fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

// runQuery builds a single query from the flags and runs it
func runQuery(f flags, filename string, stdout, stderr io.Writer) error {
	q, err := queryFromFlags(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		return errUsage
	}

	s, err := loadSurvey(filename, splitList(f.keep))
	if err != nil {
		return err
	}
	return report.Run(s, q, stdout)
}

// queryFromFlags converts the single-query flags into a config.Query
func queryFromFlags(f flags) (config.Query, error) {
	kind, err := parseMode(f.mode)
	if err != nil {
		return config.Query{}, err
	}
	if f.column == "" {
		return config.Query{}, errors.New("-c is required")
	}
	if kind == config.KindCross && f.by == "" {
		return config.Query{}, errors.New("-by is required in cross mode")
	}
	if f.substring && f.filter == "" {
		return config.Query{}, errors.New("-substring requires -filter")
	}

	top := f.top
	q := config.Query{
		Name:         string(kind),
		Kind:         kind,
		Column:       f.column,
		By:           f.by,
		Top:          &top,
		Percent:      f.percent,
		Separator:    f.sep,
		SalaryColumn: f.salaryCol,
		Format:       f.format,
	}

	if f.filter != "" {
		col, value, ok := strings.Cut(f.filter, "=")
		if !ok || col == "" {
			return config.Query{}, fmt.Errorf("-filter must be Column=Value, got %q", f.filter)
		}
		match := config.MatchExact
		if f.substring {
			match = config.MatchSubstring
		}
		q.Filter = &config.FilterSpec{Column: col, Value: value, Match: match}
	}

	if f.chartPath != "" {
		if kind == config.KindUnique {
			return config.Query{}, errors.New("-chart is not available in unique mode")
		}
		path := f.chartPath
		if path == "-" {
			path = ""
		}
		q.Chart = &chart.Config{
			Title:  f.title,
			XLabel: f.xlabel,
			YLabel: f.ylabel,
			Path:   path,
			DPI:    f.dpi,
			Style:  f.style,
		}
	}

	return q, q.Validate()
}

func parseMode(mode string) (config.Kind, error) {
	switch strings.ToLower(mode) {
	case "dist", "distribution", "":
		return config.KindDistribution, nil
	case "salary":
		return config.KindSalary, nil
	case "unique":
		return config.KindUnique, nil
	case "cross":
		return config.KindCross, nil
	default:
		return "", fmt.Errorf("unknown mode '%s' (supported: dist, salary, unique, cross)", mode)
	}
}

// runConfig runs a batch file. A positional file argument and -keep override
// the file's input and keep list.
func runConfig(f flags, filename string, stdout io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	input := cfg.Input
	if filename != "" {
		input = filename
	} else if input != "" && !filepath.IsAbs(input) {
		input = filepath.Join(filepath.Dir(f.configPath), input)
	}
	if input == "" {
		return fmt.Errorf("%w: no input file", config.ErrInvalidConfig)
	}

	keep := cfg.Keep
	if f.keep != "" {
		keep = splitList(f.keep)
	}

	s, err := loadSurvey(input, keep)
	if err != nil {
		return err
	}
	slog.Info("running batch", "config", f.configPath, "queries", len(cfg.Queries), "respondents", s.Size())
	return report.RunAll(s, cfg, stdout)
}

func loadSurvey(filename string, keep []string) (*survey.Survey, error) {
	rows, err := reader.ReadMultipleFiles(filename)
	if err != nil {
		return nil, err
	}
	s, err := survey.New(rows, keep)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded survey", "file", filename, "rows", len(rows), "respondents", s.Size())
	return s, nil
}

// showSchema prints the columns of filename. Globs use their first match.
func showSchema(filename, format string, stdout, stderr io.Writer) error {
	filePath := filename
	if strings.ContainsAny(filename, "*?[") {
		matches, err := filepath.Glob(filename)
		if err != nil {
			return fmt.Errorf("invalid glob pattern: %w", err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files match pattern: %s", filename)
		}
		filePath = matches[0]
		if len(matches) > 1 {
			fmt.Fprintf(stderr, "# Showing schema from: %s (%d files matched)\n", filePath, len(matches))
		}
	}

	infos, err := reader.ExtractSchemaInfo(filePath)
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, len(infos))
	for i, field := range infos {
		rows[i] = map[string]interface{}{
			"name":          field.Name,
			"type":          field.Type,
			"physical_type": field.PhysicalType,
			"logical_type":  field.LogicalType,
			"required":      field.Required,
			"optional":      field.Optional,
			"repeated":      field.Repeated,
			"missing":       int64(field.Missing),
		}
	}

	formatter, err := output.New(format, stdout)
	if err != nil {
		return err
	}
	formatter.SetColumns([]string{"name", "type", "physical_type", "logical_type", "required", "optional", "repeated", "missing"})
	return formatter.Format(rows)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
