package render

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot/plotter"
)

// silvermanBandwidth estimates a Gaussian KDE bandwidth with
// Silverman's Rule of Thumb: 1.06 * sd * n^(-1/5). Returns 0 when the
// sample has no spread, in which case the overlay is skipped.
func silvermanBandwidth(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(xs)
	if err != nil || math.IsNaN(sd) || sd <= 0 {
		return 0
	}
	return 1.06 * sd * math.Pow(float64(len(xs)), -1.0/5)
}

// kdeCurve evaluates a Gaussian kernel density estimate of xs at
// points evenly spaced over the data range padded by three bandwidths.
func kdeCurve(xs []float64, bandwidth float64, points int) plotter.XYs {
	if len(xs) == 0 || bandwidth <= 0 || points < 2 {
		return nil
	}

	lo, _ := stats.Min(xs)
	hi, _ := stats.Max(xs)
	lo -= 3 * bandwidth
	hi += 3 * bandwidth

	norm := 1 / (float64(len(xs)) * bandwidth * math.Sqrt(2*math.Pi))
	step := (hi - lo) / float64(points-1)

	curve := make(plotter.XYs, points)
	for i := range curve {
		x := lo + float64(i)*step
		density := 0.0
		for _, xi := range xs {
			z := (x - xi) / bandwidth
			density += math.Exp(-0.5 * z * z)
		}
		curve[i].X = x
		curve[i].Y = density * norm
	}
	return curve
}
