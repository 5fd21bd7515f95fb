package view

import "paintlife/src/universe"

//FrameInput is the input state sampled once per frame
type FrameInput struct {
	X, Y  int
	Moved bool

	Left, Right, Middle       bool //held
	LeftClicked, RightClicked bool //pressed this frame

	Wheel float64

	PauseKey, ResetKey, AddKey, DeleteKey bool
}

//Pointer remembers the last known pointer location for the keyboard commands
type Pointer struct {
	x, y  int
	known bool
}

//Moved reports whether x, y differs from the last known location
func (p *Pointer) Moved(x int, y int) bool {
	return !p.known || x != p.x || y != p.y
}

//ApplyInput drives the universe with one frame of input
func ApplyInput(u universe.Universe, p *Pointer, in FrameInput) {
	if in.Moved || in.LeftClicked || in.RightClicked {
		p.x, p.y, p.known = in.X, in.Y, true
	}

	if in.LeftClicked {
		paintAt(u, in.X, in.Y)
	}
	if in.RightClicked {
		eraseAt(u, in.X, in.Y)
	}
	//dragging works with exactly one button held
	if in.Moved && count(in.Left, in.Right, in.Middle) == 1 {
		if in.Left {
			paintAt(u, in.X, in.Y)
		}
		if in.Right {
			eraseAt(u, in.X, in.Y)
		}
	}

	if in.Wheel > 0 {
		u.SpeedUp()
	} else if in.Wheel < 0 {
		u.SlowDown()
	}

	if in.PauseKey && u.TogglePause() {
		return
	}
	if in.ResetKey {
		u.Clear()
	}
	if p.known && in.AddKey {
		paintAt(u, p.x, p.y)
	}
	if p.known && in.DeleteKey {
		eraseAt(u, p.x, p.y)
	}
}

func paintAt(u universe.Universe, x int, y int) {
	if c, ok := u.Snap(x, y); ok {
		u.Paint(c)
	}
}

func eraseAt(u universe.Universe, x int, y int) {
	if c, ok := u.Snap(x, y); ok {
		u.Erase(c)
	}
}

func count(b ...bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}
