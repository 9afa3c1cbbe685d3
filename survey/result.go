package survey

import (
	"math"
	"sort"
)

// Entry is one category of a distribution.
type Entry struct {
	Token string  `json:"token"`
	Value float64 `json:"value"`
}

// Result is an ordered category to value mapping, largest value first.
type Result struct {
	Entries []Entry

	// Denominator is the number of qualifying rows used for normalization
	Denominator int

	// Percent is set when Values are percentages of Denominator
	Percent bool
}

// Len returns the number of entries
func (r *Result) Len() int {
	return len(r.Entries)
}

// Get returns the value for token
func (r *Result) Get(token string) (float64, bool) {
	for _, e := range r.Entries {
		if e.Token == token {
			return e.Value, true
		}
	}
	return 0, false
}

// Tokens returns the entry tokens in result order
func (r *Result) Tokens() []string {
	tokens := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		tokens[i] = e.Token
	}
	return tokens
}

// Map returns the entries as an unordered map
func (r *Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.Entries))
	for _, e := range r.Entries {
		m[e.Token] = e.Value
	}
	return m
}

// Sum returns the sum of all values
func (r *Result) Sum() float64 {
	var sum float64
	for _, e := range r.Entries {
		sum += e.Value
	}
	return sum
}

// tally accumulates values per token and remembers first-seen order
type tally struct {
	order  []string
	values map[string]float64
}

func newTally() *tally {
	return &tally{values: make(map[string]float64)}
}

func (t *tally) init(token string) {
	if _, ok := t.values[token]; !ok {
		t.order = append(t.order, token)
		t.values[token] = 0
	}
}

func (t *tally) add(token string, v float64) {
	t.init(token)
	t.values[token] += v
}

// result normalizes, sorts and truncates the tally. Ties keep the order in
// which tokens were first seen.
func (t *tally) result(denominator int, o queryOptions) (*Result, error) {
	entries := make([]Entry, len(t.order))
	for i, token := range t.order {
		entries[i] = Entry{Token: token, Value: t.values[token]}
	}

	if o.percent {
		if denominator == 0 && len(entries) > 0 {
			return nil, ErrZeroDenominator
		}
		for i := range entries {
			entries[i].Value = percentOf(entries[i].Value, denominator)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	// top+1 is kept on purpose
	if o.hasTop && len(entries) > o.top+1 {
		entries = entries[:o.top+1]
	}

	return &Result{
		Entries:     entries,
		Denominator: denominator,
		Percent:     o.percent,
	}, nil
}

// percentOf returns v/denominator*100 rounded to two decimals
func percentOf(v float64, denominator int) float64 {
	return math.Round(v/float64(denominator)*100*100) / 100
}
