package geometry

import "math"

// Vertex order returned by RectangleVertices.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// RectangleVertices returns the corners of an oriented rectangle centred on
// pos, in clockwise order TL, TR, BR, BL relative to its own frame.
// scale.X is the extent along the rectangle's right axis and scale.Y the
// extent along its forward axis.
func RectangleVertices(pos Vec2, angle float64, scale Vec2) [4]Vec2 {
	forward := FromAngle(angle).MulScalar(scale.Y/2)
	right := FromAngle(angle+90).MulScalar(scale.X/2)

	return [4]Vec2{
		pos.Add(forward.Sub(right)),
		pos.Add(forward.Add(right)),
		pos.Sub(forward.Sub(right)),
		pos.Sub(forward.Add(right)),
	}
}

// EdgesOf returns the four edge vectors v[i+1]-v[i], wrapping at the end.
func EdgesOf(v [4]Vec2) [4]Vec2 {
	var edges [4]Vec2
	for i := range v {
		edges[i] = v[(i+1)%4].Sub(v[i])
	}
	return edges
}

// PointInRectangle reports whether p lies strictly inside an axis-aligned
// rectangle given by its TL, TR, BR, BL corners. Rotated rectangles give
// meaningless answers.
func PointInRectangle(p Vec2, v [4]Vec2) bool {
	return p.X > v[TopLeft].X && p.X < v[TopRight].X &&
		p.Y > v[TopLeft].Y && p.Y < v[BottomLeft].Y
}

// HalfExtents returns how far an oriented rectangle reaches from its centre
// along the world X and Y axes.
func HalfExtents(angle float64, scale Vec2) (x, y float64) {
	r := angle * math.Pi / 180
	c, s := math.Abs(math.Cos(r)), math.Abs(math.Sin(r))
	hw, hh := scale.X/2, scale.Y/2
	return c*hw + s*hh, s*hw + c*hh
}

// Bounds returns the axis-aligned bounding box of a set of vertices.
func Bounds(v [4]Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range v {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}
