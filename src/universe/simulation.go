package universe

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

var ErrUnknownTemplate = errors.New("unknown template")

var _ Universe = (*Simulation)(nil)

//Simulation is the state of the game: the grid, the cell entities, the clock and the pause switch
//implements Universe interface
//it isn't safe for concurrent use, the viewer owning it calls everything from one goroutine
type Simulation struct {
	options      Options
	grid         *Grid
	cells        *cellSet
	engine       Engine
	clock        *Clock
	pause        *PauseSwitch
	templates    map[string]Template
	generation   int
	initialStart bool
	iterTime     time.Duration
}

//NewSimulation creates the Simulation instance, it starts paused with an empty board
func NewSimulation(o *Options) (*Simulation, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	if o.Rows <= 0 || o.Cols <= 0 {
		return nil, errors.Errorf("[NewSimulation] bad grid size %dx%d", o.Rows, o.Cols)
	}
	if o.FrameRate <= 0 {
		return nil, errors.Errorf("[NewSimulation] bad frame rate %d", o.FrameRate)
	}
	e, err := NewEngine(o.Engine, o.Rows, o.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}
	opts := *o
	opts.Advanced = map[string]interface{}{"engine": o.Engine, "rule": o.Rule.String()}

	s := Simulation{
		options:      opts,
		grid:         NewGrid(o.Rows, o.Cols),
		cells:        newCellSet(o.Palette),
		engine:       e,
		clock:        NewClock(o.FrameRate, o.Speed),
		pause:        NewPauseSwitch(o.FrameRate, o.PauseTimeout),
		templates:    map[string]Template{},
		initialStart: true,
	}
	for _, t := range BuiltinTemplates {
		s.AddTemplate(t)
	}
	return &s, nil
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	return Status{
		Generation:    s.generation,
		Speed:         s.clock.Speed(),
		RunningMode:   s.pause.State(),
		LiveCells:     s.cells.len(),
		PauseReady:    s.pause.Ready(),
		Countdown:     s.pause.Remaining(),
		IterationTime: s.iterTime,
	}
}

//Options returns the simulation configuration represented by Options struct
func (s *Simulation) Options() Options {
	return s.options
}

//Area returns a copy of the current grid
func (s *Simulation) Area() Area {
	return s.grid.Snapshot()
}

//Grid returns the live grid, it must not be modified by the caller
func (s *Simulation) Grid() *Grid {
	return s.grid
}

//Cells returns the cell entities ordered by row and column
func (s *Simulation) Cells() []Cell {
	return s.cells.list()
}

//Cell returns the entity at c
func (s *Simulation) Cell(c Coord) (Cell, bool) {
	cell, ok := s.cells.get(c)
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	s.templates[tmpl.Name] = tmpl
}

//SettleTemplate paints the seeding template on the board
func (s *Simulation) SettleTemplate(name string) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "%q", name)
	}
	for _, v := range tmpl.Coordinates {
		s.Paint(Coord{v[0], v[1]})
	}
	return nil
}

//SettleWithRandomData clears the board and paints every cell with the probability density
func (s *Simulation) SettleWithRandomData(density float64, rnd *rand.Rand) {
	s.Clear()
	s.grid.walk(func(row int, col int, _ bool) {
		if rnd.Float64() < density {
			s.Paint(Coord{row, col})
		}
	})
}

//Paint makes the cell alive, painting a live cell renews it
func (s *Simulation) Paint(c Coord) {
	if !s.grid.Contains(c.Row, c.Col) {
		return
	}
	s.grid.SetAlive(c.Row, c.Col, true)
	s.cells.add(c)
}

//Erase kills the cell and drops its entity
func (s *Simulation) Erase(c Coord) {
	if !s.grid.Contains(c.Row, c.Col) {
		return
	}
	s.grid.SetAlive(c.Row, c.Col, false)
	s.cells.remove(c)
}

//Snap converts the pixel position to the grid location
func (s *Simulation) Snap(x int, y int) (Coord, bool) {
	if x < 0 || y < 0 {
		return Coord{}, false
	}
	c := Coord{Row: y / s.options.CellSize, Col: x / s.options.CellSize}
	return c, s.grid.Contains(c.Row, c.Col)
}

func (s *Simulation) SpeedUp() { s.clock.SpeedUp() }

func (s *Simulation) SlowDown() { s.clock.SlowDown() }

//TogglePause switches running mode, the request is ignored while the pause key is debounced
func (s *Simulation) TogglePause() bool {
	return s.pause.Toggle()
}

//Frame runs one frame of the loop: the pause debounce counter grows
//and a generation is advanced when the clock says so and the game isn't paused
func (s *Simulation) Frame() {
	s.pause.Tick()
	if s.pause.Paused() {
		return
	}
	if s.clock.Tick() {
		s.Advance()
	}
}

//Advance does one generation, it's skipped on an empty board
//except for the first advance after start or Clear
func (s *Simulation) Advance() bool {
	if !s.initialStart && !s.grid.HasLife() {
		return false
	}
	s.initialStart = false
	s.generation++

	start := time.Now()
	s.engine.Step(s.grid, s.options.Rule)
	s.cells.reconcile(s.grid)
	s.iterTime = time.Since(start)
	return true
}

//Clear kills all cells, drops the entities and resets the generation counter
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.cells.clear()
	s.clock.reset()
	s.generation = 0
	s.initialStart = true
}
