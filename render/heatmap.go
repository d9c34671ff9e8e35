package render

import (
	"fmt"
	"io"
	"os"

	"edakit/corr"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// corrGrid adapts a correlation result to the plotter.GridXYZ interface.
// Row 0 draws at the bottom of the heatmap.
type corrGrid struct {
	res *corr.Result
}

func (g corrGrid) Dims() (c, r int) {
	n := len(g.res.Columns)
	return n, n
}

func (g corrGrid) Z(c, r int) float64 { return g.res.Values.At(r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatmap writes a PNG heatmap of the pairwise-complete
// correlation matrix over the numeric columns of df.
//
// It propagates ErrInsufficientData from the matrix computation when
// fewer than 2 numeric columns exist.
func CorrelationHeatmap(w io.Writer, df dataframe.DataFrame, method corr.Method) error {
	res, err := corr.Matrix(df, method)
	if err != nil {
		return err
	}
	logger.Debug("rendering %s correlation heatmap over %d columns", method, len(res.Columns))

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{res: res}, colors.Palette(256))
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Correlation (%s)", method)
	p.Add(hm)

	ticks := columnTicks(res.Columns)
	p.X.Tick.Marker = ticks
	p.Y.Tick.Marker = ticks
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -0.9

	img, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("encode heatmap: %w", err)
	}
	if _, err := img.WriteTo(w); err != nil {
		return fmt.Errorf("write heatmap: %w", err)
	}
	return nil
}

// CorrelationHeatmapFile renders CorrelationHeatmap into a PNG file.
func CorrelationHeatmapFile(path string, df dataframe.DataFrame, method corr.Method) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()

	if err := CorrelationHeatmap(f, df, method); err != nil {
		return err
	}
	logger.Info("wrote %s correlation heatmap to %s", method, path)
	return nil
}

// columnTicks labels integer grid positions with column names.
type columnTicks []string

func (t columnTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, name := range t {
		pos := float64(i)
		if pos < min || pos > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: pos, Label: name})
	}
	return ticks
}
