// Package survey computes frequency distributions and salary totals over
// developer-survey tables whose categorical columns hold delimited lists
// ("Python;SQL;Go").
//
// A Survey is built once from rows shaped like the reader package output
// ([]map[string]interface{}). Construction drops every row that is missing
// a value in RequiredColumns and, when a keep list is given, projects the
// table onto that list. The Survey is read-only afterwards.
//
// # Basic Usage
//
// Counting languages across all respondents:
//
//	s, err := survey.New(rows, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := s.Distribution("LanguageHaveWorkedWith", survey.WithTop(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range res.Entries {
//	    fmt.Printf("%s: %v\n", e.Token, e.Value)
//	}
//
// # Filters
//
// Queries accept one of three filter policies:
//
//   - NoFilter(): every row qualifies, the denominator is the row count
//   - ExactToken(column, token): the token must be one of the row's split values
//   - Substring(column, s): s must occur anywhere in the raw column string
//
// The two matching policies deliberately differ. "Developer" is not an exact
// token of "Developer, back-end", but it is a substring of it:
//
//	res, err := s.Distribution("LanguageHaveWorkedWith",
//	    survey.AsPercent(),
//	    survey.WithFilter(survey.ExactToken("DevType", "Data scientist")))
//
// # Salaries
//
// SalaryDistribution sums a numeric column (ConvertedCompYearly by default)
// per token. With AsPercent the totals are divided by the row denominator,
// which yields a ratio rather than a share of salary.
//
// # Top-N Quirk
//
// WithTop(k) keeps k+1 entries, not k. Callers depend on the extra entry, so
// it is kept as is.
package survey
