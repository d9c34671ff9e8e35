// Package testkit generates demo datasets for tests and the CLI. The
// factory is called explicitly; nothing is registered at load time.
package testkit

import (
	"math"
	"math/rand"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SampleConfig configures the demo dataset generator.
type SampleConfig struct {
	Rows        int
	Seed        int64
	MissingRate float64
}

// DefaultSampleConfig returns sensible defaults for demo data.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Rows:        250,
		Seed:        42,
		MissingRate: 0.05,
	}
}

// SampleFrame generates a fresh demo dataframe: three correlated
// numeric columns, an integer count column and a categorical segment
// column, with missing values injected into the numeric columns at
// cfg.MissingRate. Output is deterministic for a fixed seed.
func SampleFrame(cfg SampleConfig) dataframe.DataFrame {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultSampleConfig().Rows
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	age := make([]float64, cfg.Rows)
	income := make([]float64, cfg.Rows)
	spend := make([]float64, cfg.Rows)
	visits := make([]int, cfg.Rows)
	segment := make([]string, cfg.Rows)

	segments := []string{"new", "regular", "loyal", "churned"}
	for i := 0; i < cfg.Rows; i++ {
		age[i] = math.Round(clamp(38+12*rng.NormFloat64(), 18, 90))
		income[i] = math.Round(35000 * math.Exp(0.5*rng.NormFloat64()))
		// Spend tracks income with noise so correlation plots have signal.
		spend[i] = math.Round(0.04*income[i] + 300*rng.NormFloat64())
		visits[i] = rng.Intn(12) + 1
		segment[i] = segments[rng.Intn(len(segments))]
	}

	injectMissing(rng, cfg.MissingRate, age, income, spend)

	return dataframe.New(
		series.New(age, series.Float, "age"),
		series.New(income, series.Float, "income"),
		series.New(spend, series.Float, "spend"),
		series.New(visits, series.Int, "visits"),
		series.New(segment, series.String, "segment"),
	)
}

func injectMissing(rng *rand.Rand, rate float64, cols ...[]float64) {
	if rate <= 0 {
		return
	}
	for _, col := range cols {
		for i := range col {
			if rng.Float64() < rate {
				col[i] = math.NaN()
			}
		}
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
