// Package render draws diagnostic plots for dataframe columns. It is a
// thin pass-through to gonum/plot: inputs are validated here, layout
// and styling belong to the plotting backend.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"edakit/internal"

	domainstats "edakit/domain/stats"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultBins is the histogram bin count used when the caller passes
// bins <= 0.
const DefaultBins = 30

var logger = internal.DefaultLogger

// Distribution writes a PNG to w with two panels for one column: a
// density-normalized histogram with a Gaussian-KDE overlay, and a
// boxplot. Missing values are dropped before plotting.
//
// It fails with ErrColumnNotFound if the column is absent and with
// ErrInsufficientData if the column has no non-missing values.
func Distribution(w io.Writer, df dataframe.DataFrame, column string, bins int) error {
	if df.Err != nil {
		return domainstats.NewInvalidInputError(df.Err.Error())
	}
	if !hasColumn(df, column) {
		return domainstats.NewColumnNotFoundError([]string{column})
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	xs := dropMissing(df.Col(column).Float())
	if len(xs) == 0 {
		return domainstats.NewInsufficientDataError(
			fmt.Sprintf("column %q has no non-missing values to plot", column))
	}
	logger.Debug("rendering distribution for %q: %d values, %d bins", column, len(xs), bins)

	histPanel, err := histogramPanel(xs, column, bins)
	if err != nil {
		return fmt.Errorf("histogram for %q: %w", column, err)
	}
	boxPanel, err := boxplotPanel(xs, column)
	if err != nil {
		return fmt.Errorf("boxplot for %q: %w", column, err)
	}

	return writePanels(w, [][]*plot.Plot{{histPanel}, {boxPanel}}, 6*vg.Inch, 8*vg.Inch)
}

// DistributionFile renders Distribution into a PNG file.
func DistributionFile(path string, df dataframe.DataFrame, column string, bins int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	if err := Distribution(f, df, column, bins); err != nil {
		return err
	}
	logger.Info("wrote distribution plot for %q to %s", column, path)
	return nil
}

func histogramPanel(xs []float64, column string, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "density"

	h, err := plotter.NewHist(plotter.Values(xs), bins)
	if err != nil {
		return nil, err
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	p.Add(h)

	// Overlay skipped for degenerate samples (no spread).
	if curve := kdeCurve(xs, silvermanBandwidth(xs), 200); curve != nil {
		line, err := plotter.NewLine(curve)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff}
		p.Add(line)
	}

	return p, nil
}

func boxplotPanel(xs []float64, column string) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = column

	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(xs))
	if err != nil {
		return nil, err
	}
	p.Add(b)
	p.NominalX(column)

	return p, nil
}

// writePanels tiles the plots onto one canvas and encodes it as PNG.
func writePanels(w io.Writer, plots [][]*plot.Plot, width, height vg.Length) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Points(4),
		PadY: vg.Points(4),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i, row := range plots {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encode plot: %w", err)
	}
	return nil
}

func hasColumn(df dataframe.DataFrame, column string) bool {
	for _, name := range df.Names() {
		if name == column {
			return true
		}
	}
	return false
}

func dropMissing(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
