// Package describe computes and formats descriptive statistics for the
// numeric columns of a dataframe.
package describe

import (
	"math"

	domainstats "edakit/domain/stats"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"
)

// ColumnPredicate decides whether a column takes part in the default
// selection. It replaces ambient type reflection: callers who need a
// different notion of "numeric" pass their own predicate.
type ColumnPredicate func(name string, t series.Type) bool

// IsNumeric is the default predicate: Float and Int columns.
func IsNumeric(_ string, t series.Type) bool {
	return t == series.Float || t == series.Int
}

// Computer computes per-column summary statistics for a dataframe.
// The zero value is not usable; construct with NewComputer.
type Computer struct {
	pred ColumnPredicate
}

// Option configures a Computer.
type Option func(*Computer)

// WithColumnPredicate overrides the default numeric-column selection.
func WithColumnPredicate(pred ColumnPredicate) Option {
	return func(c *Computer) {
		if pred != nil {
			c.pred = pred
		}
	}
}

// NewComputer creates a stats computer.
func NewComputer(opts ...Option) *Computer {
	c := &Computer{pred: IsNumeric}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute calculates summary statistics for the named columns of df.
// With no names given it selects the columns matching the Computer's
// predicate (numeric columns by default), in declaration order.
//
// It fails with ErrInvalidInput if df is not a usable table and with
// ErrColumnNotFound, naming every missing column, if any requested
// name is absent. A valid column whose values are all missing yields
// NaN for every aggregate rather than an error.
func (c *Computer) Compute(df dataframe.DataFrame, cols ...string) (*domainstats.Report, error) {
	if err := validateFrame(df); err != nil {
		return nil, err
	}

	selected, err := c.selectColumns(df, cols)
	if err != nil {
		return nil, err
	}

	report := domainstats.NewReport()
	for _, name := range selected {
		report.Add(name, columnStats(df.Col(name).Float()))
	}
	return report, nil
}

// Compute is shorthand for NewComputer().Compute.
func Compute(df dataframe.DataFrame, cols ...string) (*domainstats.Report, error) {
	return NewComputer().Compute(df, cols...)
}

func validateFrame(df dataframe.DataFrame) error {
	if df.Err != nil {
		return domainstats.NewInvalidInputError(df.Err.Error())
	}
	if df.Ncol() == 0 {
		return domainstats.NewInvalidInputError("dataframe has no columns")
	}
	return nil
}

// selectColumns resolves the requested names against the frame, or
// applies the predicate when no names were requested.
func (c *Computer) selectColumns(df dataframe.DataFrame, cols []string) ([]string, error) {
	names := df.Names()
	types := df.Types()

	if len(cols) == 0 {
		var selected []string
		for i, name := range names {
			if c.pred(name, types[i]) {
				selected = append(selected, name)
			}
		}
		return selected, nil
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	var missing []string
	for _, name := range cols {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, domainstats.NewColumnNotFoundError(missing)
	}
	return cols, nil
}

// columnStats computes the nine summary statistics for one column.
// xs is the raw column with NaN marking missing entries.
func columnStats(xs []float64) domainstats.ColumnStats {
	clean := make([]float64, 0, len(xs))
	naCount := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			naCount++
		} else {
			clean = append(clean, x)
		}
	}

	cs := domainstats.ColumnStats{N: len(xs), NACount: naCount}
	if len(clean) == 0 {
		// All-missing column: aggregates are undefined, reported as NaN.
		nan := math.NaN()
		cs.Mean, cs.Median, cs.StdDev = nan, nan, nan
		cs.Min, cs.Max, cs.Q25, cs.Q75 = nan, nan, nan, nan
		return cs
	}

	cs.Mean, _ = stats.Mean(clean)
	cs.Median, _ = stats.Median(clean)
	cs.StdDev, _ = stats.StandardDeviationSample(clean)
	cs.Min, _ = stats.Min(clean)
	cs.Max, _ = stats.Max(clean)
	cs.Q25 = quantile(clean, 0.25)
	cs.Q75 = quantile(clean, 0.75)
	return cs
}
