package survey

// Option configures a distribution query.
type Option func(*queryOptions)

type queryOptions struct {
	top          int
	hasTop       bool
	sep          string
	percent      bool
	filter       Filter
	salaryColumn string
}

func defaultOptions() queryOptions {
	return queryOptions{
		sep:          DefaultSeparator,
		salaryColumn: ColumnConvertedCompYearly,
	}
}

func buildOptions(opts []Option) queryOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sep == "" {
		o.sep = DefaultSeparator
	}
	return o
}

// WithTop truncates the result to its k+1 largest entries. The extra entry is
// intentional. Negative k disables truncation.
func WithTop(k int) Option {
	return func(o *queryOptions) {
		if k < 0 {
			o.hasTop = false
			return
		}
		o.top = k
		o.hasTop = true
	}
}

// WithSeparator sets the token separator, ";" by default
func WithSeparator(sep string) Option {
	return func(o *queryOptions) {
		o.sep = sep
	}
}

// AsPercent normalizes each value by the denominator, times 100, rounded to
// two decimals.
func AsPercent() Option {
	return func(o *queryOptions) {
		o.percent = true
	}
}

// WithFilter restricts the query to rows matching f
func WithFilter(f Filter) Option {
	return func(o *queryOptions) {
		o.filter = f
	}
}

// WithSalaryColumn sets the numeric column summed by SalaryDistribution
func WithSalaryColumn(column string) Option {
	return func(o *queryOptions) {
		if column != "" {
			o.salaryColumn = column
		}
	}
}
