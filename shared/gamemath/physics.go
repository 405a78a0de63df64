package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// RefTickMs is the tick length per-tick factors are tuned against.
const RefTickMs = 1000.0 / 60.0

// ClampMagnitude shortens v to at most max, keeping its heading.
func ClampMagnitude(v dmath.Vec2, max float64) dmath.Vec2 {
	if v.Magnitude() <= max {
		return v
	}
	return v.Normalized().MulScalar(max)
}

// Decay scales a velocity by factor once per reference tick, corrected for
// a tick of dtMs against a reference of refMs.
func Decay(v dmath.Vec2, factor, dtMs, refMs float64) dmath.Vec2 {
	return v.MulScalar(math.Pow(factor, dtMs/refMs))
}
