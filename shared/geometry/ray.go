package geometry

import "math"

// NoIntersection is returned by SegmentRayIntersectionDistance when the ray
// cannot reach the edge's line.
const NoIntersection = -1.0

// IsVertical reports whether an edge vector runs along the Y axis.
func IsVertical(edge Vec2) bool {
	return math.Abs(edge.X) < Epsilon && math.Abs(edge.Y) >= Epsilon
}

// IsHorizontal reports whether an edge vector runs along the X axis.
func IsHorizontal(edge Vec2) bool {
	return math.Abs(edge.Y) < Epsilon && math.Abs(edge.X) >= Epsilon
}

// SegmentRayIntersectionDistance casts a ray from point along direction and
// returns the ray parameter at which it meets the line through point2 with
// direction direction2. The edge must be axis-aligned. For a unit direction
// the result is a distance.
//
// NoIntersection is returned when the ray is parallel to the edge, the edge
// is neither vertical nor horizontal, or the line lies behind the origin.
func SegmentRayIntersectionDistance(point, direction, point2, direction2 Vec2) float64 {
	var t float64
	switch {
	case IsVertical(direction2):
		if math.Abs(direction.X) < Epsilon {
			return NoIntersection
		}
		t = (point2.X - point.X) / direction.X
	case IsHorizontal(direction2):
		if math.Abs(direction.Y) < Epsilon {
			return NoIntersection
		}
		t = (point2.Y - point.Y) / direction.Y
	default:
		return NoIntersection
	}
	if t < 0 {
		return NoIntersection
	}
	return t
}
