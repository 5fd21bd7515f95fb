package universe

/*
	Engine with the scratch buffer
	All cells state is calculated to the scratch buffer and then this buffer data is copied to the grid replacing the old one
*/
type copyEngine struct {
	tmpBuff *Grid
}

func newCopyEngine(rows int, cols int) Engine {
	return &copyEngine{tmpBuff: NewGrid(rows, cols)}
}

func (e *copyEngine) Step(g *Grid, r Rule) (liveCells int) {
	for row := range g.cells {
		for col := range g.cells[row] {
			nextState := g.NextState(row, col, r)
			if nextState {
				liveCells++
			}
			e.tmpBuff.cells[row][col] = nextState
		}
	}
	g.CopyFrom(e.tmpBuff)
	e.tmpBuff.Clear()
	return
}
