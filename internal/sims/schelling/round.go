package schelling

import "math"

// Round3 rounds v to three decimal places for presentation. The engine itself
// works at full precision.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
