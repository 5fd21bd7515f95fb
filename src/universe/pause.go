package universe

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStatePaused  RunningState = 0x0
	RunningStateRunning RunningState = 0x1
)

func (s RunningState) String() string {
	if s == RunningStateRunning {
		return "running"
	}
	return "paused"
}

//PauseSwitch is the debounced pause toggle
//the counter grows every frame and a toggle is accepted only when it reaches the peak
type PauseSwitch struct {
	state     RunningState
	frameRate int
	timeout   int
	peak      int
}

//NewPauseSwitch creates the switch in the paused state
func NewPauseSwitch(frameRate int, timeoutSeconds int) *PauseSwitch {
	return &PauseSwitch{
		state:     RunningStatePaused,
		frameRate: frameRate,
		peak:      frameRate * timeoutSeconds,
	}
}

//Tick counts one frame
func (p *PauseSwitch) Tick() {
	p.timeout++
}

//Ready reports whether a toggle would be accepted now
func (p *PauseSwitch) Ready() bool {
	return p.timeout >= p.peak
}

//Toggle switches between paused and running, returns false if the key is still debounced
func (p *PauseSwitch) Toggle() bool {
	if !p.Ready() {
		return false
	}
	p.timeout = 0
	if p.state == RunningStatePaused {
		p.state = RunningStateRunning
	} else {
		p.state = RunningStatePaused
	}
	return true
}

func (p *PauseSwitch) State() RunningState { return p.state }

func (p *PauseSwitch) Paused() bool { return p.state == RunningStatePaused }

//Remaining returns the whole seconds left before Ready, 0 when ready
func (p *PauseSwitch) Remaining() int {
	if p.Ready() {
		return 0
	}
	return (p.peak-p.timeout)/p.frameRate + 1
}
