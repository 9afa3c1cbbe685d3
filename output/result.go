package output

import (
	"math"

	"github.com/vegasq/surveystat/survey"
)

// Column names produced by ResultRows.
const (
	ColumnRank  = "rank"
	ColumnToken = "token"
	ColumnValue = "value"
	ColumnShare = "share"
	ColumnGroup = "group"
)

// ResultColumns is the column order for ResultRows output
var ResultColumns = []string{ColumnRank, ColumnToken, ColumnValue, ColumnShare}

// ResultRows converts a distribution result into formatter rows.
//
// Each row holds rank, token and value. share is the value as a percentage of
// the denominator, rounded to two decimals, and is only set for raw counts
// with a positive denominator.
func ResultRows(res *survey.Result) []map[string]interface{} {
	rows := make([]map[string]interface{}, len(res.Entries))
	for i, e := range res.Entries {
		row := map[string]interface{}{
			ColumnRank:  int64(i + 1),
			ColumnToken: e.Token,
			ColumnValue: e.Value,
		}
		if !res.Percent && res.Denominator > 0 {
			row[ColumnShare] = math.Round(e.Value/float64(res.Denominator)*100*100) / 100
		}
		rows[i] = row
	}
	return rows
}

// CrossColumns is the column order for CrossRows output
var CrossColumns = []string{ColumnGroup, ColumnRank, ColumnToken, ColumnValue}

// CrossRows flattens a cross distribution into one row per inner entry.
func CrossRows(results []survey.CrossResult) []map[string]interface{} {
	var rows []map[string]interface{}
	for _, cr := range results {
		for i, e := range cr.Result.Entries {
			rows = append(rows, map[string]interface{}{
				ColumnGroup: cr.Token,
				ColumnRank:  int64(i + 1),
				ColumnToken: e.Token,
				ColumnValue: e.Value,
			})
		}
	}
	return rows
}

// TokenRows converts a token list into single-column rows.
func TokenRows(tokens []string) []map[string]interface{} {
	rows := make([]map[string]interface{}, len(tokens))
	for i, token := range tokens {
		rows[i] = map[string]interface{}{ColumnToken: token}
	}
	return rows
}
