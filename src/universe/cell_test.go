package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteIntensity(t *testing.T) {
	p := Palette{Base: 255, Decay: 10, Minimum: 50}
	assert.EqualValues(t, 255, p.Intensity(0))
	assert.EqualValues(t, 245, p.Intensity(1))
	assert.EqualValues(t, 55, p.Intensity(20))
	assert.EqualValues(t, 50, p.Intensity(21))
	for age := 0; age < 1000; age++ {
		assert.GreaterOrEqual(t, int(p.Intensity(age)), p.Minimum)
	}

	assert.EqualValues(t, 0, Palette{Base: 10, Decay: 20, Minimum: -40}.Intensity(1))
	assert.EqualValues(t, 255, Palette{Base: 300}.Intensity(0))
}

func TestCellSetAddRenews(t *testing.T) {
	cs := newCellSet(DefaultPalette)
	c := Coord{1, 1}
	cs.add(c)
	cell, _ := cs.get(c)
	cell.grow(cs.palette)
	cell.grow(cs.palette)
	assert.Equal(t, 2, cell.Age)

	cs.add(c)
	assert.Equal(t, 1, cs.len())
	assert.Equal(t, 0, cell.Age)
	assert.EqualValues(t, 255, cell.Intensity)
}

func TestCellSetReconcile(t *testing.T) {
	cs := newCellSet(DefaultPalette)
	g := NewGrid(3, 3)
	survivor, dying, newborn := Coord{0, 0}, Coord{1, 1}, Coord{2, 2}
	cs.add(survivor)
	cs.add(dying)
	g.SetAlive(survivor.Row, survivor.Col, true)
	g.SetAlive(newborn.Row, newborn.Col, true)

	cs.reconcile(g)

	cells := cs.list()
	assert.Equal(t, []Cell{
		{Coord: survivor, Age: 1, Intensity: 245},
		{Coord: newborn, Age: 0, Intensity: 255},
	}, cells)
}

func TestCellSetListOrder(t *testing.T) {
	cs := newCellSet(DefaultPalette)
	for _, c := range []Coord{{2, 0}, {0, 3}, {0, 1}, {1, 5}} {
		cs.add(c)
	}
	var got []Coord
	for _, c := range cs.list() {
		got = append(got, c.Coord)
	}
	assert.Equal(t, []Coord{{0, 1}, {0, 3}, {1, 5}, {2, 0}}, got)
}
