package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 4)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 4, g.Cols())

	g.SetAlive(2, 3, true)
	assert.True(t, g.IsAlive(2, 3))

	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}} {
		g.SetAlive(c.Row, c.Col, true)
		assert.False(t, g.IsAlive(c.Row, c.Col), "outside %v", c)
	}
	assert.Equal(t, 1, g.LiveCells())
}

func TestGridClear(t *testing.T) {
	g := NewGrid(5, 5)
	assert.False(t, g.HasLife())
	g.SetAlive(0, 0, true)
	g.SetAlive(4, 4, true)
	assert.True(t, g.HasLife())
	assert.Equal(t, 2, g.LiveCells())

	g.Clear()
	assert.False(t, g.HasLife())
	assert.Equal(t, 0, g.LiveCells())
}

func TestGridSnapshotIsDetached(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetAlive(1, 1, true)
	a := g.Snapshot()
	g.SetAlive(1, 1, false)
	g.SetAlive(0, 0, true)

	assert.Equal(t, [][]bool{{false, false}, {false, true}}, a.Entities)
	assert.Equal(t, 2, a.Rows)
	assert.Equal(t, 2, a.Cols)
}

func TestGridRowsDoNotOverlap(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetAlive(0, 2, true)
	assert.False(t, g.IsAlive(1, 0))
	g.cells[0] = append(g.cells[0], true)
	assert.False(t, g.IsAlive(1, 0), "appending to a row must not leak into the next one")
}
