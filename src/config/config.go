package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"paintlife/src/universe"
)

// Config holds the configuration of the game
// everything is fixed for the program lifetime except the game speed which is only the initial value
type Config struct {
	Title                string  `toml:"title"`
	ScreenWidth          int     `toml:"screen_width"`
	ScreenHeight         int     `toml:"screen_height"`
	CellSize             int     `toml:"cell_size"`
	FrameRate            int     `toml:"frame_rate"`
	GameSpeed            float64 `toml:"game_speed"`
	CellDecayRate        int     `toml:"cell_decay_rate"`
	CellMinimumIntensity int     `toml:"cell_minimum_intensity"`
	AliveNeighbors       int     `toml:"alive_neighbors"`
	DeadNeighbors        int     `toml:"dead_neighbors"`
	PauseTimeout         int     `toml:"pause_timeout"`
	FontSize             int     `toml:"font_size"`
	FontShadow           int     `toml:"font_shadow"`
	Colors               Colors  `toml:"colors"`
}

// Colors holds the color names, see ColorNames
type Colors struct {
	Cell           string `toml:"cell"`
	Background     string `toml:"background"`
	FontForeground string `toml:"font_foreground"`
	FontBackground string `toml:"font_background"`
}

// requiredKeys lists every key a config file must define
var requiredKeys = [][]string{
	{"title"},
	{"screen_width"},
	{"screen_height"},
	{"cell_size"},
	{"frame_rate"},
	{"game_speed"},
	{"cell_decay_rate"},
	{"cell_minimum_intensity"},
	{"alive_neighbors"},
	{"dead_neighbors"},
	{"pause_timeout"},
	{"font_size"},
	{"font_shadow"},
	{"colors", "cell"},
	{"colors", "background"},
	{"colors", "font_foreground"},
	{"colors", "font_background"},
}

// Default returns the built-in configuration used when no file is given
func Default() Config {
	return Config{
		Title:                "Conway's Game of Life",
		ScreenWidth:          800,
		ScreenHeight:         600,
		CellSize:             10,
		FrameRate:            60,
		GameSpeed:            1.0,
		CellDecayRate:        10,
		CellMinimumIntensity: 50,
		AliveNeighbors:       23,
		DeadNeighbors:        3,
		PauseTimeout:         1,
		FontSize:             20,
		FontShadow:           2,
		Colors: Colors{
			Cell:           "white",
			Background:     "black",
			FontForeground: "white",
			FontBackground: "gray",
		},
	}
}

// Load reads the configuration from a TOML file
// all the keys are required, unknown keys are rejected and the result is validated
func Load(filename string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to decode file: %+v", filename)
	}

	var missing []string
	for _, k := range requiredKeys {
		if !md.IsDefined(k...) {
			missing = append(missing, strings.Join(k, "."))
		}
	}
	if len(missing) > 0 {
		return c, errors.Errorf("[LoadConfig] missing keys in %v: %v", filename, strings.Join(missing, ", "))
	}
	if u := md.Undecoded(); len(u) > 0 {
		return c, errors.Errorf("[LoadConfig] unknown keys in %v: %v", filename, u)
	}

	if err = c.Validate(); err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] invalid config in %v", filename)
	}
	return c, nil
}

// Validate checks the ranges and resolves the names
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.CellSize <= 0 || c.CellSize > c.ScreenWidth || c.CellSize > c.ScreenHeight:
		return errors.Errorf("cell size %d must be within 1..%d", c.CellSize, min(c.ScreenWidth, c.ScreenHeight))
	case c.FrameRate <= 0:
		return errors.Errorf("frame rate %d must be positive", c.FrameRate)
	case c.GameSpeed < universe.MinSpeed || c.GameSpeed > float64(c.FrameRate):
		return errors.Errorf("game speed %v must be within %v..%d", c.GameSpeed, universe.MinSpeed, c.FrameRate)
	case c.CellDecayRate < 0:
		return errors.Errorf("cell decay rate %d must not be negative", c.CellDecayRate)
	case c.CellMinimumIntensity < 0 || c.CellMinimumIntensity > 255:
		return errors.Errorf("cell minimum intensity %d must be within 0..255", c.CellMinimumIntensity)
	case c.PauseTimeout < 0:
		return errors.Errorf("pause timeout %d must not be negative", c.PauseTimeout)
	case c.FontSize <= 0:
		return errors.Errorf("font size %d must be positive", c.FontSize)
	case c.FontShadow < 0:
		return errors.Errorf("font shadow %d must not be negative", c.FontShadow)
	}
	if _, err := c.Rule(); err != nil {
		return err
	}
	if _, err := c.Scheme(); err != nil {
		return err
	}
	return nil
}

// Rule builds the automaton rule from the neighbor digits
func (c Config) Rule() (universe.Rule, error) {
	survival, err := universe.ParseNeighborDigits(c.AliveNeighbors)
	if err != nil {
		return universe.Rule{}, errors.Wrap(err, "alive_neighbors")
	}
	birth, err := universe.ParseNeighborDigits(c.DeadNeighbors)
	if err != nil {
		return universe.Rule{}, errors.Wrap(err, "dead_neighbors")
	}
	return universe.Rule{Survival: survival, Birth: birth}, nil
}

// Rows returns the grid height in cells
func (c Config) Rows() int { return c.ScreenHeight / c.CellSize }

// Cols returns the grid width in cells
func (c Config) Cols() int { return c.ScreenWidth / c.CellSize }

// UniverseOptions maps the configuration to the simulation options
func (c Config) UniverseOptions(engine string) (universe.Options, error) {
	rule, err := c.Rule()
	if err != nil {
		return universe.Options{}, err
	}
	return universe.Options{
		Rows:         c.Rows(),
		Cols:         c.Cols(),
		CellSize:     c.CellSize,
		FrameRate:    c.FrameRate,
		Speed:        c.GameSpeed,
		PauseTimeout: c.PauseTimeout,
		Rule:         rule,
		Palette: universe.Palette{
			Base:    255,
			Decay:   c.CellDecayRate,
			Minimum: c.CellMinimumIntensity,
		},
		Engine: engine,
	}, nil
}
