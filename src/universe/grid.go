package universe

//Coord is a grid location
type Coord struct {
	Row int
	Col int
}

//Grid is the board of alive flags, the source of truth for the simulation
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

//NewGrid allocates a dead grid with one backing array for all the rows
func NewGrid(rows int, cols int) *Grid {
	g := Grid{rows: rows, cols: cols, cells: make([][]bool, rows)}
	b := make([]bool, rows*cols)
	for i := range g.cells {
		start := cols * i
		g.cells[i] = b[start : start+cols : start+cols]
	}
	return &g
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

//Contains reports whether row, col is inside the grid
func (g *Grid) Contains(row int, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

//IsAlive returns the cell state, locations outside the grid are dead
func (g *Grid) IsAlive(row int, col int) bool {
	if !g.Contains(row, col) {
		return false
	}
	return g.cells[row][col]
}

//SetAlive sets the cell state, locations outside the grid are ignored
func (g *Grid) SetAlive(row int, col int, alive bool) {
	if g.Contains(row, col) {
		g.cells[row][col] = alive
	}
}

//Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		clear(g.cells[i])
	}
}

//LiveCells calculates the count of live cells
func (g *Grid) LiveCells() int {
	n := 0
	g.walk(func(_ int, _ int, alive bool) {
		if alive {
			n++
		}
	})
	return n
}

//HasLife reports whether at least one cell is alive
func (g *Grid) HasLife() bool {
	for _, r := range g.cells {
		for _, alive := range r {
			if alive {
				return true
			}
		}
	}
	return false
}

//CopyFrom copies the state of the grid o of the same size
func (g *Grid) CopyFrom(o *Grid) {
	for i := range g.cells {
		copy(g.cells[i], o.cells[i])
	}
}

//Snapshot returns a copy of the cells detached from the grid
func (g *Grid) Snapshot() Area {
	c := NewGrid(g.rows, g.cols)
	c.CopyFrom(g)
	return Area{Rows: g.rows, Cols: g.cols, Entities: c.cells}
}

//walk walks the entire grid and calls the cb function for each cell
func (g *Grid) walk(cb func(row int, col int, alive bool)) {
	for r := range g.cells {
		for c := range g.cells[r] {
			cb(r, c, g.cells[r][c])
		}
	}
}
