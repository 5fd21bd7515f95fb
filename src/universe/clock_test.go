package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockFiresOnThreshold(t *testing.T) {
	c := NewClock(60, 2)
	for i := 1; i < 30; i++ {
		assert.False(t, c.Tick(), "tick %d", i)
	}
	assert.True(t, c.Tick())
	assert.Equal(t, 0, c.Ticks())
	assert.False(t, c.Tick())
}

func TestClockSpeedSteps(t *testing.T) {
	c := NewClock(60, 0.1)
	want := []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 2.0, 3.0}
	for _, w := range want {
		c.SpeedUp()
		assert.Equal(t, w, c.Speed())
	}

	for _, w := range []float64{2.0, 1.0, 0.9, 0.8} {
		c.SlowDown()
		assert.Equal(t, w, c.Speed())
	}
}

func TestClockSpeedBounds(t *testing.T) {
	c := NewClock(30, 1)
	for i := 0; i < 500; i++ {
		c.SpeedUp()
		assert.LessOrEqual(t, c.Speed(), 30.0)
	}
	assert.Equal(t, 30.0, c.Speed())

	for i := 0; i < 500; i++ {
		c.SlowDown()
		assert.GreaterOrEqual(t, c.Speed(), MinSpeed)
	}
	assert.Equal(t, MinSpeed, c.Speed())
}

func TestClockSpeedIsClamped(t *testing.T) {
	assert.Equal(t, 60.0, NewClock(60, 75).Speed())
	assert.Equal(t, MinSpeed, NewClock(60, 0).Speed())
	assert.Equal(t, 2.5, NewClock(60, 2.54).Speed())

	c := NewClock(10, 9.5)
	c.SpeedUp()
	assert.Equal(t, 10.0, c.Speed(), "the last step is capped at the frame rate")
}
