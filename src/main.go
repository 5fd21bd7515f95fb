package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"paintlife/src/config"
	"paintlife/src/universe"
	"paintlife/src/view"
	"paintlife/src/view/window"
)

const randomDensity = 0.3

var (
	frontends = map[string]func(cfg config.Config, eo *EnvOptions) (universe.Viewer, error){
		"window": func(cfg config.Config, _ *EnvOptions) (universe.Viewer, error) {
			return window.NewWindow(cfg)
		},
		"console": func(cfg config.Config, _ *EnvOptions) (universe.Viewer, error) {
			return view.NewConsoleUI(cfg)
		},
		"headless": func(_ config.Config, eo *EnvOptions) (universe.Viewer, error) {
			return view.NewConsoleOut(os.Stdout, eo.steps), nil
		},
	}
)

type EnvOptions struct {
	configFile string
	frontend   string
	engine     string
	pattern    string
	randomData bool
	steps      int
	speed      float64
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("paintlife: ")

	eo := initOptions()

	cfg, err := loadConfig(eo)
	if err != nil {
		log.Fatalln(err)
	}

	u, err := newUniverse(cfg, eo, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatalln(err)
	}

	v, err := frontends[eo.frontend](cfg, eo)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	v.Register(u)
	err = v.Start(ctx)
	stop()
	if err != nil {
		log.Fatalln(err)
	}
}

func initOptions() (eo *EnvOptions) {
	eo = &EnvOptions{frontend: "window", engine: universe.DefEngine, steps: 1000}
	flaggy.SetName("paintlife")
	flaggy.SetDescription("Conway's Game of Life you paint with the mouse")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.configFile, "c", "config", "TOML configuration file, the built-in defaults are used without it")
	flaggy.String(&eo.frontend, "f", "frontend", "Frontend to use ["+strings.Join(names(frontends), "|")+"]")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.String(&eo.pattern, "p", "pattern", "Settle with the template ["+strings.Join(templateNames(), "|")+"]")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Int(&eo.steps, "s", "steps", "Limit the headless simulation to steps generations")
	flaggy.Float64(&eo.speed, "g", "speed", "Initial speed in generations per second, overrides the config")

	flaggy.Parse()

	if _, ok := frontends[eo.frontend]; !ok {
		flaggy.ShowHelpAndExit("unknown frontend")
	}

	return
}

//loadConfig reads the config file if any and applies the command line overrides
func loadConfig(eo *EnvOptions) (config.Config, error) {
	cfg := config.Default()
	if eo.configFile != "" {
		var err error
		if cfg, err = config.Load(eo.configFile); err != nil {
			return cfg, err
		}
	}
	if eo.speed != 0 {
		cfg.GameSpeed = eo.speed
		if err := cfg.Validate(); err != nil {
			return cfg, errors.Wrap(err, "--speed")
		}
	}
	return cfg, nil
}

//newUniverse creates the simulation and settles the initial cells
func newUniverse(cfg config.Config, eo *EnvOptions, rnd *rand.Rand) (*universe.Simulation, error) {
	o, err := cfg.UniverseOptions(eo.engine)
	if err != nil {
		return nil, err
	}
	u, err := universe.NewSimulation(&o)
	if err != nil {
		return nil, err
	}
	if eo.randomData {
		u.SettleWithRandomData(randomDensity, rnd)
	}
	if eo.pattern != "" {
		if err = u.SettleTemplate(eo.pattern); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func names[T any](m map[string]T) []string {
	n := make([]string, 0, len(m))
	for k := range m {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func templateNames() []string {
	n := make([]string, 0, len(universe.BuiltinTemplates))
	for _, t := range universe.BuiltinTemplates {
		n = append(n, t.Name)
	}
	return n
}
