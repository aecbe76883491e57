package scroll

import (
	"math"
	"time"
)

// wpmPerSpeedUnit anchors the user-visible words-per-minute readout: speed
// 1.0 reads at 60 WPM, speed 5.0 at 300 WPM. The mapping is linear and must
// not change silently; the readout is part of the product surface.
const wpmPerSpeedUnit = 60.0

// WPM converts a scroll speed into the displayed words-per-minute value.
func WPM(speed float64) int {
	return int(math.Round(clampSpeed(speed) * wpmPerSpeedUnit))
}

// EstimatedDuration predicts how long a script of the given word count takes
// to scroll through at the given speed. Zero speed yields zero, meaning
// "paused indefinitely"; callers should special-case the display.
func EstimatedDuration(words int, speed float64) time.Duration {
	wpm := WPM(speed)
	if wpm <= 0 || words <= 0 {
		return 0
	}
	minutes := float64(words) / float64(wpm)
	return time.Duration(minutes * float64(time.Minute))
}
