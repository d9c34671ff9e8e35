package describe

import (
	"math"
	"testing"

	domainstats "edakit/domain/stats"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3, math.NaN()}, series.Float, "num"),
		series.New([]int{10, 20, 30, 40}, series.Int, "count"),
	)

	rep, err := Compute(df, "count", "num")
	require.NoError(t, err)

	out, err := Format(rep)
	require.NoError(t, err)
	require.NoError(t, out.Err)

	assert.Equal(t, 2, out.Nrow())
	assert.Equal(t, append([]string{"column"}, domainstats.Fields...), out.Names())

	// Row order matches selection order.
	labels := out.Col("column").Records()
	assert.Equal(t, []string{"count", "num"}, labels)

	ns := out.Col("n").Records()
	assert.Equal(t, []string{"4", "4"}, ns)

	naCounts, err := out.Col("na_count").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, naCounts)

	means := out.Col("mean").Float()
	assert.InDelta(t, 25.0, means[0], 1e-9)
	assert.InDelta(t, 2.0, means[1], 1e-9)
}

func TestFormatNilReport(t *testing.T) {
	_, err := Format(nil)
	require.Error(t, err)
	assert.True(t, domainstats.IsInvalidInput(err))
}

func TestFormatAllMissingColumnKeepsNaN(t *testing.T) {
	rep := domainstats.NewReport()
	nan := math.NaN()
	rep.Add("empty", domainstats.ColumnStats{
		N: 3, NACount: 3,
		Mean: nan, Median: nan, StdDev: nan,
		Min: nan, Max: nan, Q25: nan, Q75: nan,
	})

	out, err := Format(rep)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Nrow())
	assert.True(t, math.IsNaN(out.Col("mean").Float()[0]))
}
