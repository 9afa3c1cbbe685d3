package survey

import (
	"log/slog"
	"math"
	"sort"
)

// Column names used by the survey datasets.
const (
	ColumnDevType              = "DevType"
	ColumnLanguageHave         = "LanguageHaveWorkedWith"
	ColumnLanguageWant         = "LanguageWantToWorkWith"
	ColumnYearsCodePro         = "YearsCodePro"
	ColumnDatabaseHave         = "DatabaseHaveWorkedWith"
	ColumnDatabaseWant         = "DatabaseWantToWorkWith"
	ColumnPlatformHave         = "PlatformHaveWorkedWith"
	ColumnPlatformWant         = "PlatformWantToWorkWith"
	ColumnWebframeHave         = "WebframeHaveWorkedWith"
	ColumnWebframeWant         = "WebframeWantToWorkWith"
	ColumnToolsTechHave        = "ToolsTechHaveWorkedWith"
	ColumnToolsTechWant        = "ToolsTechWantToWorkWith"
	ColumnVersionControlSystem = "VersionControlSystem"
	ColumnConvertedCompYearly  = "ConvertedCompYearly"
)

// RequiredColumns must hold a value in every row kept by New.
var RequiredColumns = []string{
	ColumnDevType,
	ColumnLanguageHave,
	ColumnLanguageWant,
	ColumnYearsCodePro,
	ColumnDatabaseHave,
	ColumnDatabaseWant,
	ColumnPlatformHave,
	ColumnPlatformWant,
	ColumnWebframeHave,
	ColumnWebframeWant,
	ColumnToolsTechHave,
	ColumnToolsTechWant,
	ColumnVersionControlSystem,
	ColumnConvertedCompYearly,
}

// Survey is a cleaned, read-only survey table.
type Survey struct {
	rows    []map[string]interface{}
	columns []string
	known   map[string]bool
	size    int
}

// New cleans rows and returns a Survey over them.
//
// Rows missing any of RequiredColumns are dropped. If keep is non-empty the
// table is projected onto exactly those columns and rows missing any of them
// are dropped as well. The input rows are not modified.
//
// Returns ErrInvalidInput for a nil or empty table and an *UnknownColumnError
// when a required or kept column does not exist in any row.
func New(rows []map[string]interface{}, keep []string) (*Survey, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidInput
	}

	columns := columnNames(rows)
	known := make(map[string]bool, len(columns))
	for _, col := range columns {
		known[col] = true
	}

	for _, col := range RequiredColumns {
		if !known[col] {
			return nil, &UnknownColumnError{Column: col}
		}
	}

	cleaned := dropMissing(rows, RequiredColumns)
	slog.Debug("survey: dropped rows missing required columns", "before", len(rows), "after", len(cleaned))

	if len(keep) > 0 {
		for _, col := range keep {
			if !known[col] {
				return nil, &UnknownColumnError{Column: col}
			}
		}

		projected := project(cleaned, keep)
		before := len(projected)
		cleaned = dropMissing(projected, keep)
		slog.Debug("survey: dropped rows missing kept columns", "before", before, "after", len(cleaned), "columns", len(keep))

		columns = append([]string(nil), keep...)
		known = make(map[string]bool, len(keep))
		for _, col := range keep {
			known[col] = true
		}
	}

	return &Survey{
		rows:    cleaned,
		columns: columns,
		known:   known,
		size:    len(cleaned),
	}, nil
}

// Size returns the number of rows left after cleaning
func (s *Survey) Size() int {
	return s.size
}

// Columns returns the table's column names
func (s *Survey) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Rows returns the cleaned rows. The slice is a copy; the row maps are shared
// and must not be modified.
func (s *Survey) Rows() []map[string]interface{} {
	return append([]map[string]interface{}(nil), s.rows...)
}

// HasColumn reports whether the table has the named column
func (s *Survey) HasColumn(name string) bool {
	return s.known[name]
}

func (s *Survey) checkColumns(names ...string) error {
	for _, name := range names {
		if !s.known[name] {
			return &UnknownColumnError{Column: name}
		}
	}
	return nil
}

// isMissing reports whether a cell counts as a missing value
func isMissing(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	default:
		return false
	}
}

func dropMissing(rows []map[string]interface{}, columns []string) []map[string]interface{} {
	kept := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		complete := true
		for _, col := range columns {
			if isMissing(row[col]) {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, row)
		}
	}
	return kept
}

func project(rows []map[string]interface{}, columns []string) []map[string]interface{} {
	projected := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		p := make(map[string]interface{}, len(columns))
		for _, col := range columns {
			if v, ok := row[col]; ok {
				p[col] = v
			}
		}
		projected[i] = p
	}
	return projected
}

// columnNames returns the union of column names across rows, sorted
func columnNames(rows []map[string]interface{}) []string {
	seen := make(map[string]bool)
	columns := make([]string, 0)
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
