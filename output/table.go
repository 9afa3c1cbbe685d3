package output

import (
	"fmt"
	"io"
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultMaxCellWidth is the display width beyond which text cells are truncated
const DefaultMaxCellWidth = 48

// TableFormatter renders rows as an aligned terminal table.
type TableFormatter struct {
	writer   io.Writer
	columns  []string
	maxWidth int
	printer  *message.Printer
}

// NewTableFormatter creates a table formatter that groups digits the English way
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:   w,
		maxWidth: DefaultMaxCellWidth,
		printer:  message.NewPrinter(language.English),
	}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// SetColumns fixes the column order
func (t *TableFormatter) SetColumns(columns []string) {
	t.columns = columns
}

// SetMaxCellWidth sets the display width at which cells are truncated; zero disables it
func (t *TableFormatter) SetMaxCellWidth(n int) {
	t.maxWidth = n
}

// SetLanguage switches number formatting to the given locale
func (t *TableFormatter) SetLanguage(tag language.Tag) {
	t.printer = message.NewPrinter(tag)
}

// Format writes rows as a table with a header row
func (t *TableFormatter) Format(rows []map[string]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	columns := t.columns
	if len(columns) == 0 {
		columns = columnsOf(rows)
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	alignments := make([]int, len(columns))
	for i, col := range columns {
		alignments[i] = tablewriter.ALIGN_LEFT
		if isNumericColumn(rows, col) {
			alignments[i] = tablewriter.ALIGN_RIGHT
		}
	}
	table.SetColumnAlignment(alignments)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = t.cell(row[col])
		}
		table.Append(record)
	}

	table.Render()
	return nil
}

func (t *TableFormatter) cell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if t.maxWidth > 0 && runewidth.StringWidth(val) > t.maxWidth {
			return runewidth.Truncate(val, t.maxWidth, "...")
		}
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return t.printer.Sprintf("%d", int64(val))
		}
		return t.printer.Sprintf("%.2f", val)
	case float32:
		return t.cell(float64(val))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return t.printer.Sprintf("%d", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// isNumericColumn reports whether every present value of col is a number
func isNumericColumn(rows []map[string]interface{}, col string) bool {
	seen := false
	for _, row := range rows {
		switch row[col].(type) {
		case nil:
		case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			seen = true
		default:
			return false
		}
	}
	return seen
}
