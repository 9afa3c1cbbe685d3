package survey

import (
	"fmt"
	"strings"
)

// FilterMode selects how a Filter decides whether a row qualifies.
type FilterMode int

const (
	// FilterNone lets every row qualify
	FilterNone FilterMode = iota
	// FilterExactToken requires the value to be one of the split tokens of the column
	FilterExactToken
	// FilterSubstring requires the value to occur anywhere in the raw column string
	FilterSubstring
)

// String returns the mode name as used in config files
func (m FilterMode) String() string {
	switch m {
	case FilterNone:
		return "none"
	case FilterExactToken:
		return "exact"
	case FilterSubstring:
		return "substring"
	default:
		return fmt.Sprintf("FilterMode(%d)", int(m))
	}
}

// Filter restricts a query to the rows whose Column matches Value under Mode.
// The zero Filter matches every row.
type Filter struct {
	Mode   FilterMode
	Column string
	Value  string
}

// NoFilter returns a filter under which every row qualifies
func NoFilter() Filter {
	return Filter{}
}

// ExactToken returns a filter matching rows whose column, split by the query
// separator, contains token.
func ExactToken(column, token string) Filter {
	return Filter{Mode: FilterExactToken, Column: column, Value: token}
}

// Substring returns a filter matching rows whose raw column string contains
// substr. The column is not tokenized and substr is matched literally.
func Substring(column, substr string) Filter {
	return Filter{Mode: FilterSubstring, Column: column, Value: substr}
}

// IsZero reports whether the filter lets every row through
func (f Filter) IsZero() bool {
	return f.Mode == FilterNone
}

// String renders the filter for log output
func (f Filter) String() string {
	switch f.Mode {
	case FilterNone:
		return "none"
	case FilterExactToken:
		return fmt.Sprintf("%s has %q", f.Column, f.Value)
	default:
		return fmt.Sprintf("%s contains %q", f.Column, f.Value)
	}
}

// Matches reports whether row qualifies under the filter. sep is used to
// split the column for exact-token matching. A row without the filter column
// returns an *UnknownColumnError.
func (f Filter) Matches(row map[string]interface{}, sep string) (bool, error) {
	if !f.IsZero() {
		if _, ok := row[f.Column]; !ok {
			return false, &UnknownColumnError{Column: f.Column}
		}
	}
	return f.matches(row, -1, sep)
}

func (f Filter) matches(row map[string]interface{}, index int, sep string) (bool, error) {
	switch f.Mode {
	case FilterNone:
		return true, nil
	case FilterExactToken:
		value, err := stringValue(row, f.Column, index)
		if err != nil {
			return false, err
		}
		return containsToken(value, sep, f.Value), nil
	case FilterSubstring:
		value, err := stringValue(row, f.Column, index)
		if err != nil {
			return false, err
		}
		return strings.Contains(value, f.Value), nil
	default:
		return false, fmt.Errorf("unsupported filter mode: %v", f.Mode)
	}
}

// Denominator returns the number of rows that qualify under filter. With no
// filter it is the table size.
func (s *Survey) Denominator(filter Filter, sep string) (int, error) {
	if filter.IsZero() {
		return s.size, nil
	}
	if err := s.checkColumns(filter.Column); err != nil {
		return 0, err
	}

	count := 0
	for i, row := range s.rows {
		ok, err := filter.matches(row, i, sep)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// stringValue returns the string cell of a multi-valued column
func stringValue(row map[string]interface{}, column string, index int) (string, error) {
	v := row[column]
	str, ok := toString(v)
	if !ok {
		return "", &MalformedColumnError{Column: column, Row: index, Value: v, Want: "string"}
	}
	return str, nil
}

// numericValue returns the numeric cell of a salary column
func numericValue(row map[string]interface{}, column string, index int) (float64, error) {
	v := row[column]
	num, ok := toFloat64(v)
	if !ok || isMissing(v) {
		return 0, &MalformedColumnError{Column: column, Row: index, Value: v, Want: "number"}
	}
	return num, nil
}

// toFloat64 converts a value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// toString converts a value to string if possible
func toString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return "", false
	}
}
