package view

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"paintlife/src/universe"
)

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Generation: 0   Speed: 1.0 Gen/sec", StatusLine(universe.Status{Speed: 1}))
	assert.Equal(t, "Generation: 1,234,567   Speed: 0.3 Gen/sec",
		StatusLine(universe.Status{Generation: 1234567, Speed: 0.3}))
	assert.Equal(t, "Generation: 12   Speed: 60.0 Gen/sec", StatusLine(universe.Status{Generation: 12, Speed: 60}))
}

func TestPauseLine(t *testing.T) {
	tests := []struct {
		name string
		st   universe.Status
		want string
	}{
		{"paused ready", universe.Status{RunningMode: universe.RunningStatePaused, PauseReady: true},
			"Game Paused (Press space bar to unpause)"},
		{"paused debounced", universe.Status{RunningMode: universe.RunningStatePaused, Countdown: 2},
			"Game Paused (Unpause in 2)"},
		{"running ready", universe.Status{RunningMode: universe.RunningStateRunning, PauseReady: true},
			"Press space bar to pause"},
		{"running debounced", universe.Status{RunningMode: universe.RunningStateRunning, Countdown: 1},
			"(Pause available in 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PauseLine(tt.st))
		})
	}
}

func TestShade(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, white, Shade(white, 255))
	assert.Equal(t, color.RGBA{50, 50, 50, 255}, Shade(white, 50))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Shade(white, 0))
	assert.Equal(t, color.RGBA{128, 82, 0, 255}, Shade(color.RGBA{255, 165, 0, 255}, 128))
}
