package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPreservesInsertionOrder(t *testing.T) {
	r := NewReport()
	r.Add("b", ColumnStats{N: 1})
	r.Add("a", ColumnStats{N: 2})
	r.Add("c", ColumnStats{N: 3})

	assert.Equal(t, []string{"b", "a", "c"}, r.Columns())
	assert.Equal(t, 3, r.Len())

	cs, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, cs.N)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestReportReAddKeepsPosition(t *testing.T) {
	r := NewReport()
	r.Add("x", ColumnStats{N: 1})
	r.Add("y", ColumnStats{N: 2})
	r.Add("x", ColumnStats{N: 9})

	assert.Equal(t, []string{"x", "y"}, r.Columns())
	cs, _ := r.Get("x")
	assert.Equal(t, 9, cs.N)
}

func TestReportIDsAreUnique(t *testing.T) {
	a := NewReport()
	b := NewReport()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestColumnNotFoundErrorNamesAllColumns(t *testing.T) {
	err := NewColumnNotFoundError([]string{"height", "weight"})
	require.Error(t, err)
	assert.True(t, IsColumnNotFound(err))
	assert.Contains(t, err.Error(), "height, weight")
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsInvalidInput(NewInvalidInputError("not a table")))
	assert.True(t, IsInsufficientData(NewInsufficientDataError("need 2 numeric columns, have 1")))
	assert.False(t, IsColumnNotFound(NewInvalidInputError("nope")))
}
