package stats

import (
	"github.com/google/uuid"
)

// Fields lists the summary-statistic fields of a formatted report, in
// output order.
var Fields = []string{"n", "mean", "median", "sd", "min", "max", "na_count", "q25", "q75"}

// ColumnStats holds the nine summary statistics computed for one column.
// N counts every row of the column, missing entries included; the
// remaining aggregates are computed over non-missing values only. A
// column with zero non-missing values carries NaN in every aggregate.
type ColumnStats struct {
	N       int     `json:"n"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	StdDev  float64 `json:"sd"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	NACount int     `json:"na_count"`
	Q25     float64 `json:"q25"`
	Q75     float64 `json:"q75"`
}

// Report maps column names to their ColumnStats, preserving the order
// in which columns were analyzed. A Report is created fresh by each
// computation and should be treated as immutable once returned.
type Report struct {
	// ID identifies one computation for logging and artifact naming.
	ID string

	columns []string
	stats   map[string]ColumnStats
}

// NewReport creates an empty report with a fresh ID.
func NewReport() *Report {
	return &Report{
		ID:    uuid.NewString(),
		stats: make(map[string]ColumnStats),
	}
}

// Add appends stats for a column. Re-adding a column name overwrites
// its stats without changing its position.
func (r *Report) Add(column string, cs ColumnStats) {
	if _, ok := r.stats[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.stats[column] = cs
}

// Get returns the stats for a column and whether the column was analyzed.
func (r *Report) Get(column string) (ColumnStats, bool) {
	cs, ok := r.stats[column]
	return cs, ok
}

// Columns returns the analyzed column names in analysis order.
func (r *Report) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of analyzed columns.
func (r *Report) Len() int {
	return len(r.columns)
}
