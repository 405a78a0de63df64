// Package collision detects overlap between oriented rectangles and pushes
// movers out of static walls.
//
// Everything here is pure geometry over components.MotionData. The wall
// cache is not synchronised and must only be used from the game loop.
package collision

import (
	"math"

	"github.com/automoto/amoebash/shared/geometry"
)

// HasCollided runs the separating axis test over the edge normals of both
// rectangles and stops at the first separating axis. Rectangles whose
// projections only touch are not colliding.
func HasCollided(a, b [4]geometry.Vec2) bool {
	for _, poly := range [2][4]geometry.Vec2{a, b} {
		for _, edge := range geometry.EdgesOf(poly) {
			axis := geometry.Perp(edge)
			if axis.Magnitude() < geometry.Epsilon {
				continue
			}
			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if !overlaps(minA, maxA, minB, maxB) {
				return false
			}
		}
	}
	return true
}

func project(poly [4]geometry.Vec2, axis geometry.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		d := p.Dot(&axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// overlaps holds when either span starts strictly before the other one
// ends. Equal spans overlap; spans sharing only an endpoint do not.
func overlaps(minA, maxA, minB, maxB float64) bool {
	return minA < maxB && minB < maxA
}
