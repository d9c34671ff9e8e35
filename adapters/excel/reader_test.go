package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadFrameCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	csv := "name,score,active\nalice,12.5,true\nbob,7,false\ncarol,,true\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	df, err := NewDataReader(path).ReadFrame()
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, []string{"name", "score", "active"}, df.Names())
	assert.Equal(t, series.Float, df.Col("score").Type())
}

func TestReadFrameXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"city", "pop"},
		{"lyon", 522000},
		{"nantes", 320000},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	df, err := NewDataReader(path).ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, []string{"city", "pop"}, df.Names())
}

func TestReadFrameMissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/data.csv").ReadFrame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadFrameXLSXHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	row := []interface{}{"only", "headers"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &row))
	require.NoError(t, f.SaveAs(path))

	_, err := NewDataReader(path).ReadFrame()
	require.Error(t, err)
}
