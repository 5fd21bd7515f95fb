package universe

import (
	"context"
	"math/rand"
	"time"
)

//Universe is the interface the viewers use to display and control the simulation
//all the methods must be called from the goroutine that owns the simulation
type Universe interface {
	Status() Status
	Options() Options
	Area() Area
	Cells() []Cell
	AddTemplate(tmpl Template)
	SettleTemplate(name string) error
	SettleWithRandomData(density float64, rnd *rand.Rand)
	Paint(c Coord)
	Erase(c Coord)
	Snap(x int, y int) (Coord, bool)
	SpeedUp()
	SlowDown()
	TogglePause() bool
	Frame()
	Advance() bool
	Clear()
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Register(u Universe)
	Start(ctx context.Context) error
}

//Area is a read only snapshot of the current grid
type Area struct {
	Rows     int
	Cols     int
	Entities [][]bool
}

//Options represents the Universe's configurable options
type Options struct {
	Rows         int
	Cols         int
	CellSize     int
	FrameRate    int
	Speed        float64
	PauseTimeout int //seconds
	Rule         Rule
	Palette      Palette
	Engine       string
	Advanced     map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	Speed         float64
	RunningMode   RunningState
	LiveCells     int
	PauseReady    bool
	Countdown     int //seconds left until the pause key is accepted
	IterationTime time.Duration
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [row,col] coordinates
}

//default options
const (
	DefFrameRate    = 60
	DefSpeed        = 1.0
	DefRows         = 60
	DefCols         = 80
	DefCellSize     = 10
	DefPauseTimeout = 1
	DefEngine       = "swap"
)

var DefaultUniverseOptions = Options{
	Rows:         DefRows,
	Cols:         DefCols,
	CellSize:     DefCellSize,
	FrameRate:    DefFrameRate,
	Speed:        DefSpeed,
	PauseTimeout: DefPauseTimeout,
	Rule:         ConwayRule,
	Palette:      DefaultPalette,
	Engine:       DefEngine,
}

//Templates shipped with the program
var BuiltinTemplates = []Template{
	{"blinker", "period 2 oscillator", [][]int{{1, 0}, {1, 1}, {1, 2}}},
	{"block", "2x2 still life", [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{"glider", "the smallest spaceship", [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
	{"sample", "the test sample with 3 stable patterns", [][]int{
		{1, 1}, {2, 1},
		{1, 2}, {2, 2},
		{3, 3},
		{2, 4},
		{3, 4},
		{3, 5},
	}},
}
