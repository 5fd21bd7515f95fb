package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullGrid(rows int, cols int) *Grid {
	g := NewGrid(rows, cols)
	g.walk(func(r int, c int, _ bool) { g.SetAlive(r, c, true) })
	return g
}

func TestNeighborsOnFullGrid(t *testing.T) {
	g := fullGrid(5, 5)
	tests := []struct {
		name string
		c    Coord
		want int
	}{
		{"top left corner", Coord{0, 0}, 3},
		{"top right corner", Coord{0, 4}, 3},
		{"bottom left corner", Coord{4, 0}, 3},
		{"bottom right corner", Coord{4, 4}, 3},
		{"top edge", Coord{0, 2}, 5},
		{"left edge", Coord{2, 0}, 5},
		{"interior", Coord{2, 2}, 8},
		{"next to the corner", Coord{1, 1}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Neighbors(tt.c.Row, tt.c.Col))
		})
	}
}

func TestNeighborsCountsOnlySurrounding(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetAlive(2, 2, true)
	assert.Equal(t, 0, g.Neighbors(2, 2), "the cell itself is not a neighbor")

	g.SetAlive(0, 0, true) //two rows away
	g.SetAlive(1, 1, true)
	g.SetAlive(3, 2, true)
	assert.Equal(t, 2, g.Neighbors(2, 2))
	assert.Equal(t, 2, g.Neighbors(0, 1))
}

func TestConwayRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, ConwayRule.Next(true, n), "live cell with %d neighbors", n)
		assert.Equal(t, n == 3, ConwayRule.Next(false, n), "dead cell with %d neighbors", n)
	}
}

func TestNextStateUsesTheRule(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetAlive(0, 0, true)
	g.SetAlive(0, 1, true)
	g.SetAlive(0, 2, true)
	assert.True(t, g.NextState(1, 1, ConwayRule), "birth with 3 neighbors")
	assert.True(t, g.NextState(0, 1, ConwayRule), "survival with 2 neighbors")
	assert.False(t, g.NextState(0, 0, ConwayRule), "death with 1 neighbor")

	highLife := Rule{Survival: NewNeighborSet(2, 3), Birth: NewNeighborSet(3, 6)}
	assert.False(t, g.NextState(2, 2, highLife))
}

func TestParseNeighborDigits(t *testing.T) {
	tests := []struct {
		in   int
		want []int
	}{
		{23, []int{2, 3}},
		{3, []int{3}},
		{0, []int{0}},
		{32, []int{2, 3}},
		{12345678, []int{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tt := range tests {
		s, err := ParseNeighborDigits(tt.in)
		require.NoError(t, err, "%d", tt.in)
		assert.Equal(t, tt.want, s.Counts(), "%d", tt.in)
	}

	for _, bad := range []int{9, 29, -3} {
		_, err := ParseNeighborDigits(bad)
		assert.ErrorIs(t, err, ErrBadNeighborCount, "%d", bad)
	}
}

func TestNeighborSet(t *testing.T) {
	s := NewNeighborSet(8, 0, 4, 9, -1)
	assert.Equal(t, []int{0, 4, 8}, s.Counts())
	assert.Equal(t, "048", s.String())
	assert.False(t, s.Has(9))
	assert.False(t, s.Has(-1))
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("B3/S23")
	require.NoError(t, err)
	assert.Equal(t, ConwayRule, r)
	assert.Equal(t, "B3/S23", r.String())

	r, err = ParseRule(" s23/b36 ")
	require.NoError(t, err)
	assert.Equal(t, "B36/S23", r.String())

	r, err = ParseRule("B/S")
	require.NoError(t, err)
	assert.Empty(t, r.Birth.Counts())

	for _, bad := range []string{"", "B3", "B3/S23/X", "B3/X23", "B9/S23", "B3/B3", "/S23"} {
		_, err := ParseRule(bad)
		assert.Error(t, err, "%q", bad)
	}
}
