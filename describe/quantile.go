package describe

import (
	"math"
	"sort"
)

// quantile returns the p-quantile of xs using linear interpolation
// between order statistics (the "type 7" definition shared by R and
// NumPy): h = (n-1)p, interpolating between floor(h) and floor(h)+1.
// xs must not contain NaN. Returns NaN for an empty slice.
func quantile(xs []float64, p float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
