package view

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"paintlife/src/config"
	"paintlife/src/universe"
)

const (
	grayLevels      = 24 //aurora gray ramp
	randomDensity   = 0.3
	fieldView       = "battlefield"
	leftColumnWidth = 44
	minWindowHeight = 20
)

//modMotion marks the mouse events reported while the pointer moves with a button held
var modMotion = gocui.Modifier(termbox.ModMotion)

type keyBindings struct {
	key      interface{}
	mod      gocui.Modifier
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the terminal viewer, one terminal character is one grid cell
//the frames are driven by a ticker, all the universe calls happen on the gocui main loop goroutine
type ConsoleUI struct {
	u           universe.Universe
	g           *gocui.Gui
	k           []keyBindings
	cfg         config.Config
	rnd         *rand.Rand
	pointer     universe.Coord
	hasPointer  bool
	liveFillers [grayLevels]string
	deadFiller  string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStatePaused:  aurora.Colorize("paused", aurora.BlueFg).String(),
		universe.RunningStateRunning: aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

func NewConsoleUI(cfg config.Config) (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		cfg:        cfg,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		deadFiller: "░",
	}
	for i := range t.liveFillers {
		t.liveFillers[i] = aurora.Gray(uint8(i), "█").String()
	}

	t.g, err = gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to init the terminal")
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, gocui.ModNone, "^C", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, gocui.ModNone, "SPACE", "Pause", t.cmdPause, ""},
		{gocui.KeyDelete, gocui.ModNone, "DEL", "Reset", t.cmdClear, ""},
		{'a', gocui.ModNone, "A", "Add at pointer", t.cmdAdd, ""},
		{'d', gocui.ModNone, "D", "Delete at pointer", t.cmdDelete, ""},
		{'w', gocui.ModNone, "W", "Settle with random", t.cmdSettleWithRandom, ""},
		{gocui.MouseLeft, gocui.ModNone, "LMB", "Paint", t.cmdPaint, fieldView},
		{gocui.MouseLeft, modMotion, "", "", t.cmdPaint, fieldView},
		{gocui.MouseRight, gocui.ModNone, "RMB", "Erase", t.cmdErase, fieldView},
		{gocui.MouseRight, modMotion, "", "", t.cmdErase, fieldView},
		{gocui.MouseWheelUp, gocui.ModNone, "WHEEL", "Speed", t.cmdSpeedUp, ""},
		{gocui.MouseWheelDown, gocui.ModNone, "", "", t.cmdSlowDown, ""},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, kb.mod, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return errors.Wrapf(err, "[NewConsoleUI] failed to bind %v", kb.name)
		}
	}
	return nil
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

//Start runs the gocui main loop and the frame ticker until quit or ctx is done
func (t *ConsoleUI) Start(ctx context.Context) error {
	defer t.g.Close()

	done := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(done)
		if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
			return errors.Wrap(err, "[ConsoleUI]")
		}
		return nil
	})
	eg.Go(func() error {
		t.frames(ctx, done)
		return nil
	})
	return eg.Wait()
}

//frames posts one frame to the main loop on every tick
func (t *ConsoleUI) frames(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.FrameRate))
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			<-done
			return
		case <-ticker.C:
			t.g.Update(func(*gocui.Gui) error {
				t.u.Frame()
				return nil
			})
		}
	}
}

func (t *ConsoleUI) renderField(v *gocui.View) {
	//the entire field is redrawing at once now
	v.Clear()

	o := t.u.Options()
	shades := make([]int, o.Rows*o.Cols)
	for i := range shades {
		shades[i] = -1
	}
	for _, c := range t.u.Cells() {
		shades[c.Row*o.Cols+c.Col] = int(c.Intensity) * (grayLevels - 1) / 255
	}

	crop := false
	maxW, maxH := v.Size()
	if o.Cols > maxW || o.Rows > maxH {
		crop = true
	}

	var b bytes.Buffer
	for row := 0; row < o.Rows; row++ {
		//discard the data outside the view area
		if row >= maxH {
			break
		}
		//line feed char
		if row != 0 {
			b.WriteByte(10)
		}
		if crop && row == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for col := 0; col < o.Cols && col < maxW; col++ {
			if s := shades[row*o.Cols+col]; s >= 0 {
				b.WriteString(t.liveFillers[s])
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(v *gocui.View) {
	s := t.u.Status()
	v.Clear()
	_, _ = fmt.Fprintln(v, " "+StatusLine(s))
	_, _ = fmt.Fprintln(v, " "+aurora.Yellow(PauseLine(s)).String())
	_, _ = fmt.Fprintln(v)
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
}

func (t *ConsoleUI) renderConfiguration(v *gocui.View) {
	o := t.u.Options()
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", o.Cols, o.Rows))
	_, _ = fmt.Fprintln(v, t.renderProp("Rule", "%v", o.Rule))
	_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", o.Engine))
	_, _ = fmt.Fprintln(v, t.renderProp("Frame rate", "%v fps", o.FrameRate))
	_, _ = fmt.Fprintln(v, t.renderProp("Pause timeout", "%v s", o.PauseTimeout))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView(fieldView)
		return nil
	}

	if _, err := t.headerLayout(g, 3, t.cfg.Title); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration(v)
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus(v)
	} else {
		t.renderStatus(v)
	}

	if v, err := g.SetView(fieldView, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
		t.renderField(v)
	} else {
		t.renderField(v)
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			text = text[:max(maxX, 0)]
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

//cellAt converts the view cursor into the grid location, one character per cell
func (t *ConsoleUI) cellAt(v *gocui.View) universe.Coord {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	return universe.Coord{Row: cy + oy, Col: cx + ox}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPause(_ *gocui.View) error {
	t.u.TogglePause()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Clear()
	return nil
}

func (t *ConsoleUI) cmdAdd(_ *gocui.View) error {
	if t.hasPointer {
		t.u.Paint(t.pointer)
	}
	return nil
}

func (t *ConsoleUI) cmdDelete(_ *gocui.View) error {
	if t.hasPointer {
		t.u.Erase(t.pointer)
	}
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.u.SettleWithRandomData(randomDensity, t.rnd)
	return nil
}

func (t *ConsoleUI) cmdPaint(v *gocui.View) error {
	t.pointer, t.hasPointer = t.cellAt(v), true
	t.u.Paint(t.pointer)
	return nil
}

func (t *ConsoleUI) cmdErase(v *gocui.View) error {
	t.pointer, t.hasPointer = t.cellAt(v), true
	t.u.Erase(t.pointer)
	return nil
}

func (t *ConsoleUI) cmdSpeedUp(_ *gocui.View) error {
	t.u.SpeedUp()
	return nil
}

func (t *ConsoleUI) cmdSlowDown(_ *gocui.View) error {
	t.u.SlowDown()
	return nil
}
