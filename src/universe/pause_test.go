package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseSwitchStartsPaused(t *testing.T) {
	p := NewPauseSwitch(10, 2)
	assert.True(t, p.Paused())
	assert.Equal(t, RunningStatePaused, p.State())
	assert.Equal(t, "paused", p.State().String())
}

func TestPauseSwitchDebounce(t *testing.T) {
	p := NewPauseSwitch(10, 2)

	for i := 0; i < 19; i++ {
		p.Tick()
		assert.False(t, p.Toggle(), "frame %d", i+1)
	}
	assert.True(t, p.Paused())

	p.Tick()
	assert.True(t, p.Toggle())
	assert.Equal(t, RunningStateRunning, p.State())

	//the counter restarts on every transition
	assert.False(t, p.Toggle())
	for i := 0; i < 20; i++ {
		p.Tick()
	}
	assert.True(t, p.Toggle())
	assert.True(t, p.Paused())
}

func TestPauseSwitchRemaining(t *testing.T) {
	p := NewPauseSwitch(10, 2)
	assert.Equal(t, 3, p.Remaining())
	p.Tick()
	assert.Equal(t, 2, p.Remaining())
	for i := 0; i < 10; i++ {
		p.Tick()
	}
	assert.Equal(t, 1, p.Remaining())
	for i := 0; i < 9; i++ {
		p.Tick()
	}
	assert.True(t, p.Ready())
	assert.Equal(t, 0, p.Remaining())
}

func TestPauseSwitchWithoutTimeout(t *testing.T) {
	p := NewPauseSwitch(10, 0)
	assert.True(t, p.Toggle())
	assert.True(t, p.Toggle())
	assert.True(t, p.Paused())
}
