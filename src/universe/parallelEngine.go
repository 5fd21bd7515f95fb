package universe

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

/*
	Engine with multithreaded computation
	the grid is split into row bands each of which is computed by an individual goroutine,
	the bands are written to the spare buffer which is swapped in when all the workers are done
*/

const (
	DefMinRowsPerWorker = 3 //minimum rows for one worker
)

type parallelEngine struct {
	next  *Grid
	bands []band
}

//band describes the rows of one worker
type band struct {
	row1      int
	row2      int //exclusive
	liveCells int
}

func newParallelEngine(rows int, cols int) Engine {
	workers := runtime.NumCPU()
	rowsPerWorker := (rows + workers - 1) / workers //ceiling division
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	}
	e := parallelEngine{next: NewGrid(rows, cols)}
	for r1 := 0; r1 < rows; r1 += rowsPerWorker {
		e.bands = append(e.bands, band{row1: r1, row2: min(r1+rowsPerWorker, rows)})
	}
	return &e
}

func (e *parallelEngine) Step(g *Grid, r Rule) (liveCells int) {
	var eg errgroup.Group
	for i := range e.bands {
		b := &e.bands[i]
		eg.Go(func() error {
			e.calcBand(g, b, r)
			return nil
		})
	}
	//workers never fail
	_ = eg.Wait()
	for _, b := range e.bands {
		liveCells += b.liveCells
	}
	g.cells, e.next.cells = e.next.cells, g.cells
	e.next.Clear()
	return
}

//calcBand calculates new states for the cells inside the band
func (e *parallelEngine) calcBand(g *Grid, b *band, r Rule) {
	b.liveCells = 0
	for row := b.row1; row < b.row2; row++ {
		for col := 0; col < g.cols; col++ {
			if g.NextState(row, col, r) {
				e.next.cells[row][col] = true
				b.liveCells++
			}
		}
	}
}
