package output

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// JSONFormatter writes one JSON object per row
type JSONFormatter struct {
	writer  io.Writer
	columns []string
}

// NewJSONFormatter creates a JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// SetColumns restricts objects to the given keys. Keys are always written
// sorted, so the order of columns does not matter.
func (j *JSONFormatter) SetColumns(columns []string) {
	j.columns = columns
}

// Format writes rows as JSON Lines. Unset and nil values are omitted when
// columns are fixed.
func (j *JSONFormatter) Format(rows []map[string]interface{}) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetEscapeHTML(false)
	for _, row := range rows {
		if err := encoder.Encode(j.project(row)); err != nil {
			return err
		}
	}
	return nil
}

func (j *JSONFormatter) project(row map[string]interface{}) map[string]interface{} {
	if len(j.columns) == 0 {
		return row
	}
	obj := make(map[string]interface{}, len(j.columns))
	for _, col := range j.columns {
		if v, ok := row[col]; ok && v != nil {
			obj[col] = v
		}
	}
	return obj
}
