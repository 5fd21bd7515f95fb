package universe

import "math"

const MinSpeed = 0.1

//Clock converts frames into generations
//the rate is in generations per second and can be changed at any frame
type Clock struct {
	frameRate int
	speed     float64
	ticks     int
}

//NewClock creates the clock, speed is clamped to [MinSpeed, frameRate]
func NewClock(frameRate int, speed float64) *Clock {
	c := Clock{frameRate: frameRate}
	c.setSpeed(speed)
	return &c
}

//Tick counts one frame, it returns true when a generation is due
func (c *Clock) Tick() bool {
	c.ticks++
	if float64(c.ticks) >= float64(c.frameRate)/c.speed {
		c.ticks = 0
		return true
	}
	return false
}

func (c *Clock) Speed() float64 { return c.speed }

func (c *Clock) Ticks() int { return c.ticks }

//SpeedUp adds 0.1 below 1 gen/sec and 1.0 above, up to the frame rate
func (c *Clock) SpeedUp() {
	s := c.speed
	if s < 1 {
		s += 0.1
	} else if s < float64(c.frameRate) {
		s += 1
	}
	c.setSpeed(s)
}

//SlowDown subtracts 1.0 above 1 gen/sec and 0.1 below, down to MinSpeed
func (c *Clock) SlowDown() {
	s := c.speed
	if s > 1 {
		s -= 1
	} else if s > MinSpeed {
		s -= 0.1
	}
	c.setSpeed(s)
}

//setSpeed rounds to one decimal place so repeated steps don't drift
func (c *Clock) setSpeed(s float64) {
	s = math.Round(s*10) / 10
	if s < MinSpeed {
		s = MinSpeed
	}
	if top := float64(c.frameRate); s > top {
		s = top
	}
	c.speed = s
}

//reset drops the accumulated ticks
func (c *Clock) reset() {
	c.ticks = 0
}
