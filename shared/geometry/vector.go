// Package geometry holds the pure 2D helpers shared by the collision
// resolver and the enemy AI. It keeps no state.
//
// Angles are in degrees, 0 points "up" (negative Y on screen) and positive
// angles rotate clockwise.
package geometry

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the vector type stored in components. Arithmetic uses its own
// methods (Add, Sub, MulScalar, Dot, Magnitude, Normalized); this package
// only adds the angle conventions and rectangle helpers on top.
type Vec2 = dmath.Vec2

// Epsilon is the tolerance used when classifying edges and directions.
const Epsilon = 1e-6

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Perp returns a rotated a quarter turn counter-clockwise in screen space.
func Perp(a Vec2) Vec2 { return Vec2{X: -a.Y, Y: a.X} }

// Up is the direction of angle 0.
var Up = Vec2{X: 0, Y: -1}

// FromAngle returns the unit heading for an angle in degrees.
func FromAngle(deg float64) Vec2 {
	r := deg * math.Pi / 180
	return Vec2{X: math.Sin(r), Y: -math.Cos(r)}
}

// AngleOf returns the heading of v in degrees within [0, 360).
// The zero vector maps to 0.
func AngleOf(v Vec2) float64 {
	if math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon {
		return 0
	}
	return NormalizeAngle(math.Atan2(v.X, -v.Y) * 180 / math.Pi)
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDelta returns the signed shortest rotation from a to b, in (-180, 180].
func AngleDelta(a, b float64) float64 {
	d := NormalizeAngle(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// LerpAngle moves from toward to by factor t along the shortest arc.
// t is clamped to [0, 1].
func LerpAngle(from, to, t float64) float64 {
	t = Clamp(t, 0, 1)
	return NormalizeAngle(from + AngleDelta(from, to)*t)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
