package universe

/*
	Engine with the small buffer
	It stores the current and previous rows only.
	A row is written back to the grid as soon as the evaluation moves past the next one,
	since no remaining row depends on it anymore
*/
type rowsEngine struct {
	tmpBuff *Grid
}

func newRowsEngine(_ int, cols int) Engine {
	return &rowsEngine{tmpBuff: NewGrid(2, cols)}
}

func (e *rowsEngine) Step(g *Grid, r Rule) (liveCells int) {
	if g.rows == 0 {
		return 0
	}
	buf := e.tmpBuff.cells
	for row := range g.cells {
		for col := range g.cells[row] {
			nextState := g.NextState(row, col, r)
			if nextState {
				liveCells++
			}
			buf[1][col] = nextState
		}
		if row-1 >= 0 {
			copy(g.cells[row-1], buf[0])
		}
		buf[0], buf[1] = buf[1], buf[0]
	}
	copy(g.cells[g.rows-1], buf[0])
	e.tmpBuff.Clear()
	return
}
