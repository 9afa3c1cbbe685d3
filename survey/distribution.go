package survey

import (
	"log/slog"
	"sort"
)

// Distribution counts how often each token of column occurs across the rows
// that qualify under the query filter.
//
// A row with tokens {A, B} adds one to both A and B. With AsPercent the counts
// become percentages of the qualifying row count. With WithTop(k) only the
// k+1 largest entries are kept.
func (s *Survey) Distribution(column string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	if err := s.checkColumns(column); err != nil {
		return nil, err
	}

	denominator, err := s.Denominator(o.filter, o.sep)
	if err != nil {
		return nil, err
	}

	counts := newTally()
	for i, row := range s.rows {
		ok, err := o.filter.matches(row, i, o.sep)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		value, err := stringValue(row, column, i)
		if err != nil {
			return nil, err
		}
		for _, token := range Tokenize(value, o.sep) {
			counts.add(token, 1)
		}
	}

	slog.Debug("survey: distribution", "column", column, "filter", o.filter, "denominator", denominator, "tokens", len(counts.order))
	return counts.result(denominator, o)
}

// SalaryDistribution sums the salary column per token of column.
//
// Every token that appears anywhere in column starts at zero, whatever the
// filter. A qualifying row adds its salary once to each distinct token it
// holds. With AsPercent each total is divided by the qualifying row count and
// multiplied by 100; the result is a ratio, not a share of salary.
func (s *Survey) SalaryDistribution(column string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	if err := s.checkColumns(column, o.salaryColumn); err != nil {
		return nil, err
	}

	denominator, err := s.Denominator(o.filter, o.sep)
	if err != nil {
		return nil, err
	}

	universe, err := s.UniqueTokens(column, o.sep)
	if err != nil {
		return nil, err
	}

	totals := newTally()
	for _, token := range universe {
		totals.init(token)
	}

	for i, row := range s.rows {
		ok, err := o.filter.matches(row, i, o.sep)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		value, err := stringValue(row, column, i)
		if err != nil {
			return nil, err
		}
		salary, err := numericValue(row, o.salaryColumn, i)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]bool)
		for _, token := range Tokenize(value, o.sep) {
			if seen[token] {
				continue
			}
			seen[token] = true
			totals.add(token, salary)
		}
	}

	slog.Debug("survey: salary distribution", "column", column, "salary_column", o.salaryColumn, "filter", o.filter, "denominator", denominator)
	return totals.result(denominator, o)
}

// UniqueTokens returns every token that appears in column, sorted.
func (s *Survey) UniqueTokens(column, sep string) ([]string, error) {
	if err := s.checkColumns(column); err != nil {
		return nil, err
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	seen := make(map[string]bool)
	tokens := make([]string, 0)
	for i, row := range s.rows {
		value, err := stringValue(row, column, i)
		if err != nil {
			return nil, err
		}
		for _, token := range Tokenize(value, sep) {
			if !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}
	sort.Strings(tokens)
	return tokens, nil
}

// DefaultCrossTop is the top setting used by CrossDistribution when none is given.
const DefaultCrossTop = 9

// CrossResult is the distribution of one column among the rows holding a
// token of another.
type CrossResult struct {
	By     string
	Token  string
	Share  float64
	Result *Result
}

// CrossDistribution breaks column of down by the leading tokens of column by.
//
// The leading tokens of by are picked by percentage with the same top rule as
// Distribution (DefaultCrossTop when WithTop is not given). For each one, of
// is counted as a percentage over the rows whose by column holds that token
// exactly. Separator and top options apply to both levels; percent and filter
// options are ignored.
func (s *Survey) CrossDistribution(by, of string, opts ...Option) ([]CrossResult, error) {
	o := buildOptions(opts)
	if err := s.checkColumns(by, of); err != nil {
		return nil, err
	}
	top := DefaultCrossTop
	if o.hasTop {
		top = o.top
	}

	leaders, err := s.Distribution(by, AsPercent(), WithTop(top), WithSeparator(o.sep))
	if err != nil {
		return nil, err
	}

	results := make([]CrossResult, 0, leaders.Len())
	for _, leader := range leaders.Entries {
		res, err := s.Distribution(of,
			AsPercent(),
			WithTop(top),
			WithSeparator(o.sep),
			WithFilter(ExactToken(by, leader.Token)),
		)
		if err != nil {
			return nil, err
		}
		results = append(results, CrossResult{
			By:     by,
			Token:  leader.Token,
			Share:  leader.Value,
			Result: res,
		})
	}
	return results, nil
}
