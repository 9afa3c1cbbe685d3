package output

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/surveystat/survey"
)

func sampleResult() *survey.Result {
	return &survey.Result{
		Entries: []survey.Entry{
			{Token: "Python", Value: 2},
			{Token: "SQL", Value: 2},
			{Token: "JavaScript", Value: 1},
		},
		Denominator: 3,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"json", false},
		{"jsonl", false},
		{"JSON", false},
		{"csv", false},
		{"table", false},
		{"", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.name, &bytes.Buffer{})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestResultRows(t *testing.T) {
	rows := ResultRows(sampleResult())

	require.Len(t, rows, 3)
	assert.Equal(t, "Python", rows[0][ColumnToken])
	assert.Equal(t, int64(1), rows[0][ColumnRank])
	assert.Equal(t, 33.33, rows[2][ColumnShare])
}

func TestResultRows_PercentHasNoShare(t *testing.T) {
	res := sampleResult()
	res.Percent = true

	for _, row := range ResultRows(res) {
		assert.NotContains(t, row, ColumnShare)
	}
}

func TestCrossRows(t *testing.T) {
	rows := CrossRows([]survey.CrossResult{
		{Token: "Data scientist", Result: sampleResult()},
		{Token: "Student", Result: &survey.Result{Entries: []survey.Entry{{Token: "Go", Value: 100}}}},
	})

	require.Len(t, rows, 4)
	assert.Equal(t, "Student", rows[3][ColumnGroup])
	assert.Equal(t, int64(1), rows[3][ColumnRank])
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(ResultRows(sampleResult())))

	scanner := bufio.NewScanner(&buf)
	var lines int
	for scanner.Scan() {
		var obj map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &obj), "line %d is not JSON", lines)
		lines++
	}
	assert.Equal(t, 3, lines)
}

func TestJSONFormatter_SetColumns(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	f.SetColumns([]string{ColumnToken, ColumnShare})

	rows := []map[string]interface{}{
		{ColumnRank: int64(1), ColumnToken: "Go", ColumnValue: 2.0, ColumnShare: 50.0},
		{ColumnRank: int64(2), ColumnToken: "Rust", ColumnValue: 1.0, ColumnShare: nil},
	}
	require.NoError(t, f.Format(rows))

	want := `{"share":50,"token":"Go"}` + "\n" + `{"token":"Rust"}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONFormatter_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{{ColumnToken: "HTML/CSS & <JS>"}}
	require.NoError(t, NewJSONFormatter(&buf).Format(rows))
	assert.Contains(t, buf.String(), "HTML/CSS & <JS>")
}

func TestCSVFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)
	f.SetColumns(ResultColumns)

	require.NoError(t, f.Format(ResultRows(sampleResult())))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err, "Format() produced invalid CSV")
	require.Len(t, records, 4)
	assert.Equal(t, []string{"rank", "token", "value", "share"}, records[0])
	assert.Equal(t, []string{"3", "JavaScript", "1", "33.33"}, records[3])
}

func TestCSVFormatter_SortedColumnsByDefault(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{
		{"z_last": "1", "a_first": "2"},
		{"m_middle": "3"},
	}
	require.NoError(t, NewCSVFormatter(&buf).Format(rows))

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "a_first,m_middle,z_last", header)
}

func TestCSVFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(nil))
	assert.Zero(t, buf.Len())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"plain", "Python", "Python"},
		{"C++ untouched", "C++", "C++"},
		{"formula", "=SUM(A1)", "'=SUM(A1)"},
		{"plus", "+1", "'+1"},
		{"minus with quote", "-it's", "'-it''s"},
		{"at", "@cmd", "'@cmd"},
		{"integer float", float64(200), "200"},
		{"fraction", 66.67, "66.67"},
		{"large salary", float64(1250000), "1250000"},
		{"int", int64(3), "3"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.SetColumns([]string{ColumnToken, ColumnValue})

	rows := []map[string]interface{}{
		{ColumnToken: "Python", ColumnValue: float64(1234567)},
		{ColumnToken: "SQL", ColumnValue: 12.5},
	}
	require.NoError(t, f.Format(rows))

	out := buf.String()
	for _, want := range []string{"token", "value", "Python", "1,234,567", "12.50"} {
		assert.Contains(t, out, want)
	}
}

func TestTableFormatter_Truncates(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.SetMaxCellWidth(10)

	long := "Data scientist or machine learning specialist"
	require.NoError(t, f.Format([]map[string]interface{}{{ColumnToken: long}}))

	out := buf.String()
	assert.NotContains(t, out, long, "long token not truncated")
	assert.Contains(t, out, "...", "truncated token has no tail")
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(nil))
	assert.Zero(t, buf.Len())
}

func TestFormatter_SetOutput(t *testing.T) {
	for _, name := range []string{"json", "csv", "table"} {
		t.Run(name, func(t *testing.T) {
			var first, second bytes.Buffer
			f, err := New(name, &first)
			require.NoError(t, err)

			f.SetOutput(&second)
			require.NoError(t, f.Format(TokenRows([]string{"Go"})))
			assert.Zero(t, first.Len(), "SetOutput() not honored")
			assert.NotZero(t, second.Len(), "SetOutput() not honored")
		})
	}
}
