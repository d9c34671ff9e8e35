// Package excel loads tabular files (xlsx, csv) into dataframes.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"edakit/internal"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files into a dataframe.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewDataReader creates a data reader that handles both Excel and CSV
// files, dispatching on the file extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, log: internal.DefaultLogger}
}

// ReadFrame reads the file into a dataframe. The first row is treated
// as the header; column types are detected from the values.
func (r *DataReader) ReadFrame() (dataframe.DataFrame, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return dataframe.DataFrame{}, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVFrame()
	default:
		return r.readExcelFrame()
	}
}

func (r *DataReader) readExcelFrame() (dataframe.DataFrame, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("Excel file must have at least a header row and one data row")
	}
	r.log.Debug("read sheet %q in %.2fms (%d rows)", sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	// excelize drops trailing empty cells; pad rows to the header width.
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row[:width]
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	return df, df.Err
}

func (r *DataReader) readCSVFrame() (dataframe.DataFrame, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	return df, df.Err
}
