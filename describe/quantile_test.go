package describe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	xs := []float64{15, 20, 35, 40, 50}

	// h = (n-1)p over the sorted sample.
	cases := map[float64]float64{
		0:    15,
		0.25: 20,
		0.4:  29, // h=1.6 -> 20 + 0.6*(35-20)
		0.5:  35,
		0.75: 40,
		1:    50,
	}
	for p, want := range cases {
		assert.InDelta(t, want, quantile(xs, p), 1e-9, "p=%v", p)
	}
}

func TestQuantileUnsortedInput(t *testing.T) {
	xs := []float64{40, 15, 50, 20, 35}
	assert.InDelta(t, 35, quantile(xs, 0.5), 1e-9)
	// Input must not be reordered.
	assert.Equal(t, []float64{40, 15, 50, 20, 35}, xs)
}

func TestQuantileEdgeCases(t *testing.T) {
	assert.True(t, math.IsNaN(quantile(nil, 0.5)))
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.25))
	assert.Equal(t, 1.0, quantile([]float64{1, 2}, -0.5))
	assert.Equal(t, 2.0, quantile([]float64{1, 2}, 1.5))
	assert.InDelta(t, 1.5, quantile([]float64{1, 2}, 0.5), 1e-9)
}
