// Package output renders survey results as JSON Lines, CSV or terminal tables.
//
// Every formatter works on rows represented as []map[string]interface{}.
// ResultRows, CrossRows and TokenRows turn survey query results into that
// shape.
//
// # Basic Usage
//
//	res, err := s.Distribution("LanguageHaveWorkedWith", survey.WithTop(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	formatter.SetColumns(output.ResultColumns)
//	if err := formatter.Format(output.ResultRows(res)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Supported Formats
//
//   - json, jsonl: one JSON object per line
//   - csv: comma-separated values with a header row
//   - table: aligned ASCII table, numbers grouped by thousands
//
// # Column Order
//
// Without SetColumns, CSV and table output use the sorted union of all
// row keys. JSON objects are always written with sorted keys and keep only
// the fixed columns when they are set.
//
// # CSV Injection
//
// String cells starting with =, +, -, @, |, or a control character are
// prefixed with a single quote so spreadsheets do not evaluate them.
package output
