package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"edakit/adapters/excel"
	"edakit/corr"
	"edakit/describe"
	"edakit/internal"
	"edakit/internal/testkit"
	"edakit/render"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
)

var logger = internal.DefaultLogger

func newRootCmd() *cobra.Command {
	var input string

	root := &cobra.Command{
		Use:           "eda",
		Short:         "Descriptive statistics and diagnostic plots for tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&input, "input", "i", "", "input file (.csv or .xlsx); a demo dataset is used when omitted")

	root.AddCommand(newDescribeCmd(&input))
	root.AddCommand(newPlotCmd(&input))
	root.AddCommand(newSampleCmd())
	return root
}

func newDescribeCmd(input *string) *cobra.Command {
	var columns []string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print per-column summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(*input)
			if err != nil {
				return err
			}

			rep, err := describe.Compute(df, columns...)
			if err != nil {
				return err
			}
			logger.Debug("computed report %s over %d columns", rep.ID, rep.Len())

			out, err := describe.Format(rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "columns to analyze (default: all numeric columns)")
	return cmd
}

func newPlotCmd(input *string) *cobra.Command {
	plot := &cobra.Command{
		Use:   "plot",
		Short: "Render diagnostic plots as PNG files",
	}

	var column, distOut string
	var bins int
	dist := &cobra.Command{
		Use:   "dist",
		Short: "Histogram with density overlay plus boxplot for one column",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(*input)
			if err != nil {
				return err
			}
			return render.DistributionFile(distOut, df, column, bins)
		},
	}
	dist.Flags().StringVar(&column, "column", "", "column to plot")
	dist.Flags().IntVar(&bins, "bins", 0, "histogram bin count (default 30)")
	dist.Flags().StringVarP(&distOut, "out", "o", "dist.png", "output PNG path")
	_ = dist.MarkFlagRequired("column")

	var method, corrOut string
	heat := &cobra.Command{
		Use:   "corr",
		Short: "Correlation heatmap over the numeric columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(*input)
			if err != nil {
				return err
			}
			m, err := corr.ParseMethod(method)
			if err != nil {
				return err
			}
			return render.CorrelationHeatmapFile(corrOut, df, m)
		},
	}
	heat.Flags().StringVarP(&method, "method", "m", "pearson", "correlation method: pearson, spearman or kendall")
	heat.Flags().StringVarP(&corrOut, "out", "o", "corr.png", "output PNG path")

	plot.AddCommand(dist, heat)
	return plot
}

func newSampleCmd() *cobra.Command {
	cfg := testkit.DefaultSampleConfig()
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a demo dataset as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			df := testkit.SampleFrame(cfg)
			if df.Err != nil {
				return df.Err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create sample file: %w", err)
			}
			defer f.Close()

			if err := df.WriteCSV(f); err != nil {
				return fmt.Errorf("write sample file: %w", err)
			}
			logger.Info("wrote %d-row sample dataset to %s", df.Nrow(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	cmd.Flags().Float64Var(&cfg.MissingRate, "missing-rate", cfg.MissingRate, "fraction of numeric cells left missing")
	cmd.Flags().StringVarP(&out, "out", "o", "sample.csv", "output CSV path")
	return cmd
}

// loadFrame reads the input file, or generates the demo dataset when no
// input was given.
func loadFrame(input string) (dataframe.DataFrame, error) {
	if input == "" {
		logger.Info("no input file given, using generated demo dataset")
		return testkit.SampleFrame(testkit.DefaultSampleConfig()), nil
	}

	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv", ".xlsx":
		return excel.NewDataReader(input).ReadFrame()
	default:
		return dataframe.DataFrame{}, fmt.Errorf("unsupported input type %q: want .csv or .xlsx", filepath.Ext(input))
	}
}
