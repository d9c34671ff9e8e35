// Package corr computes pairwise correlation matrices over the numeric
// columns of a dataframe.
package corr

import (
	"fmt"
	"math"

	domainstats "edakit/domain/stats"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Method selects the correlation coefficient.
type Method string

const (
	Pearson  Method = "pearson"
	Spearman Method = "spearman"
	Kendall  Method = "kendall"
)

// ParseMethod maps a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case Pearson, Spearman, Kendall:
		return Method(s), nil
	}
	return "", domainstats.NewInvalidInputError(fmt.Sprintf("unknown correlation method %q", s))
}

// Result is a labeled symmetric correlation matrix. Values.At(i, j) is
// the coefficient between Columns[i] and Columns[j]; cells with fewer
// than 2 complete observation pairs are NaN.
type Result struct {
	Columns []string
	Method  Method
	Values  *mat.Dense
}

// Matrix computes the pairwise correlation matrix over the numeric
// columns of df. Missingness is handled pairwise-complete: each cell
// uses exactly the rows where both of its columns are non-missing.
//
// It fails with ErrInvalidInput if df is not a usable table and with
// ErrInsufficientData if fewer than 2 numeric columns exist.
func Matrix(df dataframe.DataFrame, method Method) (*Result, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}
	if df.Err != nil {
		return nil, domainstats.NewInvalidInputError(df.Err.Error())
	}

	names := df.Names()
	types := df.Types()

	var columns []string
	var data [][]float64
	for i, name := range names {
		if types[i] == series.Float || types[i] == series.Int {
			columns = append(columns, name)
			data = append(data, df.Col(name).Float())
		}
	}
	if len(columns) < 2 {
		return nil, domainstats.NewInsufficientDataError(
			fmt.Sprintf("correlation requires at least 2 numeric columns, have %d", len(columns)))
	}

	k := len(columns)
	values := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		values.Set(i, i, 1)
		for j := i + 1; j < k; j++ {
			r := pairCoefficient(data[i], data[j], method)
			values.Set(i, j, r)
			values.Set(j, i, r)
		}
	}

	return &Result{Columns: columns, Method: method, Values: values}, nil
}

// pairCoefficient computes one cell over the complete cases of the pair.
func pairCoefficient(xs, ys []float64, method Method) float64 {
	x, y := completeCases(xs, ys)
	if len(x) < 2 {
		return math.NaN()
	}

	switch method {
	case Spearman:
		return stat.Correlation(ranks(x), ranks(y), nil)
	case Kendall:
		return stat.Kendall(x, y, nil)
	default:
		return stat.Correlation(x, y, nil)
	}
}

// completeCases filters the pair down to rows where both values are
// non-missing.
func completeCases(xs, ys []float64) ([]float64, []float64) {
	x := make([]float64, 0, len(xs))
	y := make([]float64, 0, len(ys))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		x = append(x, xs[i])
		y = append(y, ys[i])
	}
	return x, y
}
