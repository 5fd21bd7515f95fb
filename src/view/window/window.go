package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"paintlife/src/config"
	"paintlife/src/universe"
	"paintlife/src/view"
)

//Window is the graphical viewer, one ebiten tick is one frame of the game
//implements ebiten.Game and universe.Viewer
type Window struct {
	u       universe.Universe
	cfg     config.Config
	scheme  config.ColorScheme
	face    font.Face
	pointer view.Pointer
	ctx     context.Context
}

//NewWindow prepares the colors and the caption font, the window opens on Start
func NewWindow(cfg config.Config) (*Window, error) {
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, errors.Wrap(err, "[NewWindow]")
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "[NewWindow] failed to parse the font")
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(cfg.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[NewWindow] failed to create the font face")
	}
	return &Window{cfg: cfg, scheme: scheme, face: face, ctx: context.Background()}, nil
}

func (w *Window) Register(u universe.Universe) {
	w.u = u
}

//Start opens the window and runs the frame loop until the window is closed or ctx is done
func (w *Window) Start(ctx context.Context) error {
	w.ctx = ctx
	ebiten.SetWindowSize(w.cfg.ScreenWidth, w.cfg.ScreenHeight)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetTPS(w.cfg.FrameRate)
	defer func() { _ = w.face.Close() }()
	if err := ebiten.RunGame(w); err != nil {
		return errors.Wrap(err, "[Window]")
	}
	return nil
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	view.ApplyInput(w.u, &w.pointer, w.sampleInput())
	w.u.Frame()
	return nil
}

func (w *Window) sampleInput() view.FrameInput {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	return view.FrameInput{
		X:            x,
		Y:            y,
		Moved:        w.pointer.Moved(x, y),
		Left:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		LeftClicked:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Wheel:        wheel,
		PauseKey:     ebiten.IsKeyPressed(ebiten.KeySpace),
		ResetKey:     ebiten.IsKeyPressed(ebiten.KeyDelete),
		AddKey:       ebiten.IsKeyPressed(ebiten.KeyA),
		DeleteKey:    ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	width, height := float32(w.cfg.ScreenWidth), float32(w.cfg.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, width, height, w.scheme.Background, false)

	size := float32(w.cfg.CellSize)
	for _, c := range w.u.Cells() {
		clr := view.Shade(w.scheme.Cell, c.Intensity)
		if clr == w.scheme.Background {
			continue
		}
		vector.DrawFilledRect(screen, float32(c.Col)*size, float32(c.Row)*size, size, size, clr, false)
	}

	st := w.u.Status()
	cx := w.cfg.ScreenWidth / 2
	w.caption(screen, view.StatusLine(st), cx, int(float64(w.cfg.ScreenHeight)*0.05))
	w.caption(screen, view.PauseLine(st), cx, int(float64(w.cfg.ScreenHeight)*0.925)+w.cfg.FontSize)
}

//caption draws the text centered at cx, cy: the shadow copy first, then the foreground one
func (w *Window) caption(screen *ebiten.Image, s string, cx int, cy int) {
	b := text.BoundString(w.face, s)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - b.Dy()/2 - b.Min.Y
	if off := w.cfg.FontShadow; off > 0 {
		text.Draw(screen, s, w.face, x+off, y+off, w.scheme.FontBackground)
	}
	text.Draw(screen, s, w.face, x, y, w.scheme.FontForeground)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.ScreenWidth, w.cfg.ScreenHeight
}
