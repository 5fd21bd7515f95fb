package universe

import (
	"sort"

	"github.com/pkg/errors"
)

//Engine evaluates one generation of the grid in place and returns the count of live cells
//every engine reads only the untouched current state while evaluating, they differ in the buffering strategy
type Engine interface {
	Step(g *Grid, r Rule) (liveCells int)
}

//EngineFactory creates the engine for the grid of rows x cols
type EngineFactory func(rows int, cols int) Engine

var ErrUnknownEngine = errors.New("unknown engine")

var engines = map[string]EngineFactory{
	"swap":     newSwapEngine,
	"copy":     newCopyEngine,
	"rows":     newRowsEngine,
	"parallel": newParallelEngine,
}

//EngineNames returns the names of the registered engines
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//NewEngine creates the engine by name
func NewEngine(name string, rows int, cols int) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
	return f(rows, cols), nil
}

/*
	Engine with two alternating buffers
	All cells state is calculated to the spare buffer, then the buffers are swapped
	and the old generation is cleared to be reused
*/
type swapEngine struct {
	next *Grid
}

func newSwapEngine(rows int, cols int) Engine {
	return &swapEngine{next: NewGrid(rows, cols)}
}

func (e *swapEngine) Step(g *Grid, r Rule) (liveCells int) {
	g.walk(func(row int, col int, _ bool) {
		if g.NextState(row, col, r) {
			e.next.cells[row][col] = true
			liveCells++
		}
	})
	g.cells, e.next.cells = e.next.cells, g.cells
	e.next.Clear()
	return
}
