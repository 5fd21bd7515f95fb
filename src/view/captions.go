package view

import (
	"image/color"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"paintlife/src/universe"
)

var printer = message.NewPrinter(language.English)

//StatusLine is the upper caption: generation count and speed
func StatusLine(st universe.Status) string {
	return printer.Sprintf("Generation: %d   Speed: %s Gen/sec", st.Generation, FormatSpeed(st.Speed))
}

//PauseLine is the lower caption: what the pause key does or how long until it works
func PauseLine(st universe.Status) string {
	if st.RunningMode == universe.RunningStatePaused {
		if st.PauseReady {
			return "Game Paused (Press space bar to unpause)"
		}
		return "Game Paused (Unpause in " + strconv.Itoa(st.Countdown) + ")"
	}
	if st.PauseReady {
		return "Press space bar to pause"
	}
	return "(Pause available in " + strconv.Itoa(st.Countdown) + ")"
}

//FormatSpeed prints the speed with one decimal place
func FormatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', 1, 64)
}

//Shade scales the live cell color by the cell intensity, white gives the plain gray level
func Shade(c color.RGBA, intensity uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(intensity) / 255)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
