package universe

import "sort"

//Palette describes how a cell fades while it ages
type Palette struct {
	Base    int //intensity of a newborn cell
	Decay   int //intensity lost per generation
	Minimum int //intensity floor
}

var DefaultPalette = Palette{Base: 255, Decay: 10, Minimum: 50}

//Intensity returns max(Minimum, Base - Decay*age) clamped to a byte
func (p Palette) Intensity(age int) uint8 {
	v := p.Base - p.Decay*age
	if v < p.Minimum {
		v = p.Minimum
	}
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

//Cell is the visual entity of a live grid location
//it's a cache of the grid's alive bits, the grid stays the source of truth
type Cell struct {
	Coord
	Age       int
	Intensity uint8
}

func newCell(c Coord, p Palette) *Cell {
	return &Cell{Coord: c, Intensity: p.Intensity(0)}
}

//grow makes the cell one generation older
func (c *Cell) grow(p Palette) {
	c.Age++
	c.Intensity = p.Intensity(c.Age)
}

//renew brings the cell back to the newborn look
func (c *Cell) renew(p Palette) {
	c.Age = 0
	c.Intensity = p.Intensity(0)
}

//cellSet owns all the live Cell entities
type cellSet struct {
	palette Palette
	cells   map[Coord]*Cell
}

func newCellSet(p Palette) *cellSet {
	return &cellSet{palette: p, cells: make(map[Coord]*Cell)}
}

func (cs *cellSet) get(c Coord) (*Cell, bool) {
	cell, ok := cs.cells[c]
	return cell, ok
}

//add creates the entity or renews the existing one
func (cs *cellSet) add(c Coord) {
	if cell, ok := cs.cells[c]; ok {
		cell.renew(cs.palette)
		return
	}
	cs.cells[c] = newCell(c, cs.palette)
}

func (cs *cellSet) remove(c Coord) {
	delete(cs.cells, c)
}

func (cs *cellSet) clear() {
	clear(cs.cells)
}

func (cs *cellSet) len() int {
	return len(cs.cells)
}

//reconcile ages the survivors and drops the dead first, then creates the entities for the newborns
func (cs *cellSet) reconcile(g *Grid) {
	for c, cell := range cs.cells {
		if g.IsAlive(c.Row, c.Col) {
			cell.grow(cs.palette)
		} else {
			delete(cs.cells, c)
		}
	}
	g.walk(func(row int, col int, alive bool) {
		if !alive {
			return
		}
		c := Coord{row, col}
		if _, ok := cs.cells[c]; !ok {
			cs.cells[c] = newCell(c, cs.palette)
		}
	})
}

//list returns copies of the entities ordered by row then column
func (cs *cellSet) list() []Cell {
	l := make([]Cell, 0, len(cs.cells))
	for _, cell := range cs.cells {
		l = append(l, *cell)
	}
	sort.Slice(l, func(i, j int) bool {
		if l[i].Row != l[j].Row {
			return l[i].Row < l[j].Row
		}
		return l[i].Col < l[j].Col
	})
	return l
}
