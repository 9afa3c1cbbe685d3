package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedFormat is returned by New for an unknown format name
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert rows to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)

	// SetColumns fixes the column order. Without it columns are sorted.
	SetColumns(columns []string)
}

// Formats lists the names accepted by New
var Formats = []string{"json", "jsonl", "csv", "table"}

// New returns the formatter registered under name, writing to w.
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "table", "":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w '%s' (supported: %s)", ErrUnsupportedFormat, name, strings.Join(Formats, ", "))
	}
}
