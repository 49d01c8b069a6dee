package models

import "math"

// ClampScore bounds a fit/risk/roi score to [0,10] and rounds it to one
// decimal place, the only precision the tracker stores.
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return math.Round(v*10) / 10
}
