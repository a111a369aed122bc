package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/grid"
)

// TestRowColumn_Bounds verifies ErrOutOfRange for invalid line indices.
func TestRowColumn_Bounds(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	_, err = g.Row(-1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.Row(2)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.Column(3)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestView_SharedStorage checks that a row write is visible through the
// crossing column view and through the grid itself.
func TestView_SharedStorage(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	row, err := g.Row(1)
	require.NoError(t, err)
	col, err := g.Column(2)
	require.NoError(t, err)

	require.NoError(t, row.Set(2, grid.Filled))

	s, err := col.At(1)
	require.NoError(t, err)
	assert.Equal(t, grid.Filled, s, "column view must alias the same cell")
	s, err = g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Filled, s)
}

// TestView_Lengths checks Len for both orientations of a 2×3 grid.
func TestView_Lengths(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	row, err := g.Row(0)
	require.NoError(t, err)
	col, err := g.Column(0)
	require.NoError(t, err)

	assert.Equal(t, 3, row.Len(), "row length = Cols")
	assert.Equal(t, 2, col.Len(), "column length = Rows")
}

// TestView_States verifies the buffer-reusing snapshot of a column.
func TestView_States(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, grid.Filled))
	require.NoError(t, g.Set(2, 1, grid.Empty))

	col, err := g.Column(1)
	require.NoError(t, err)

	buf := make([]grid.CellState, 0, 8)
	buf = col.States(buf)
	assert.Equal(t, []grid.CellState{grid.Filled, grid.Unknown, grid.Empty}, buf)

	// Reuse resets length, not capacity.
	buf = col.States(buf)
	assert.Len(t, buf, 3)
}

// TestView_HasUnknown covers both outcomes.
func TestView_HasUnknown(t *testing.T) {
	g, err := grid.New(1, 2)
	require.NoError(t, err)
	row, err := g.Row(0)
	require.NoError(t, err)

	assert.True(t, row.HasUnknown())
	require.NoError(t, row.Set(0, grid.Filled))
	require.NoError(t, row.Set(1, grid.Empty))
	assert.False(t, row.HasUnknown())
}
