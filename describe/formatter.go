package describe

import (
	domainstats "edakit/domain/stats"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Formatter flattens a stats report into a row-per-column dataframe.
type Formatter struct{}

// NewFormatter creates a stats formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format reshapes a report into a dataframe with one row per analyzed
// column: a leading "column" field with the column name, then the nine
// statistic fields in domain order. Row order matches report order.
//
// It fails with ErrInvalidInput if the report is nil or carries an
// empty column name.
func (f *Formatter) Format(rep *domainstats.Report) (dataframe.DataFrame, error) {
	if rep == nil {
		return dataframe.DataFrame{}, domainstats.NewInvalidInputError("nil report")
	}

	names := rep.Columns()
	ns := make([]int, len(names))
	means := make([]float64, len(names))
	medians := make([]float64, len(names))
	sds := make([]float64, len(names))
	mins := make([]float64, len(names))
	maxs := make([]float64, len(names))
	naCounts := make([]int, len(names))
	q25s := make([]float64, len(names))
	q75s := make([]float64, len(names))

	for i, name := range names {
		if name == "" {
			return dataframe.DataFrame{}, domainstats.NewInvalidInputError("report entry with empty column name")
		}
		cs, _ := rep.Get(name)
		ns[i] = cs.N
		means[i] = cs.Mean
		medians[i] = cs.Median
		sds[i] = cs.StdDev
		mins[i] = cs.Min
		maxs[i] = cs.Max
		naCounts[i] = cs.NACount
		q25s[i] = cs.Q25
		q75s[i] = cs.Q75
	}

	out := dataframe.New(
		series.New(names, series.String, "column"),
		series.New(ns, series.Int, "n"),
		series.New(means, series.Float, "mean"),
		series.New(medians, series.Float, "median"),
		series.New(sds, series.Float, "sd"),
		series.New(mins, series.Float, "min"),
		series.New(maxs, series.Float, "max"),
		series.New(naCounts, series.Int, "na_count"),
		series.New(q25s, series.Float, "q25"),
		series.New(q75s, series.Float, "q75"),
	)
	return out, out.Err
}

// Format is shorthand for NewFormatter().Format.
func Format(rep *domainstats.Report) (dataframe.DataFrame, error) {
	return NewFormatter().Format(rep)
}
