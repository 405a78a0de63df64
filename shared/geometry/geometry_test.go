package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestRectangleVerticesAxisAligned(t *testing.T) {
	v := RectangleVertices(V(10, 20), 0, V(4, 6))

	assert.InDelta(t, 8, v[TopLeft].X, tol)
	assert.InDelta(t, 17, v[TopLeft].Y, tol)
	assert.InDelta(t, 12, v[TopRight].X, tol)
	assert.InDelta(t, 17, v[TopRight].Y, tol)
	assert.InDelta(t, 12, v[BottomRight].X, tol)
	assert.InDelta(t, 23, v[BottomRight].Y, tol)
	assert.InDelta(t, 8, v[BottomLeft].X, tol)
	assert.InDelta(t, 23, v[BottomLeft].Y, tol)
}

func TestRectangleVerticesQuarterTurn(t *testing.T) {
	// Facing right, the forward axis (height) now lies along X.
	v := RectangleVertices(V(0, 0), 90, V(4, 6))

	minX, minY, maxX, maxY := Bounds(v)
	assert.InDelta(t, -3, minX, tol)
	assert.InDelta(t, 3, maxX, tol)
	assert.InDelta(t, -2, minY, tol)
	assert.InDelta(t, 2, maxY, tol)

	// Top-left of the rotated frame is the front-left corner.
	assert.InDelta(t, 3, v[TopLeft].X, tol)
	assert.InDelta(t, -2, v[TopLeft].Y, tol)
}

func TestEdgesOfClosesLoop(t *testing.T) {
	v := RectangleVertices(V(5, 5), 37, V(3, 8))
	edges := EdgesOf(v)

	var sum Vec2
	for _, e := range edges {
		sum = sum.Add(e)
	}
	assert.InDelta(t, 0, sum.X, tol)
	assert.InDelta(t, 0, sum.Y, tol)
	assert.InDelta(t, 3, edges[0].Magnitude(), tol)
	assert.InDelta(t, 8, edges[1].Magnitude(), tol)
}

func TestPointInRectangle(t *testing.T) {
	v := RectangleVertices(V(0, 0), 0, V(10, 10))

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"centre", V(0, 0), true},
		{"inside near corner", V(4.9, -4.9), true},
		{"on edge", V(5, 0), false},
		{"outside right", V(6, 0), false},
		{"outside above", V(0, -7), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PointInRectangle(tc.p, v))
		})
	}
}

func TestSegmentRayIntersectionDistance(t *testing.T) {
	tests := []struct {
		name         string
		point, dir   Vec2
		point2, dir2 Vec2
		want         float64
	}{
		{"hits vertical edge ahead", V(0, 0), V(1, 0), V(10, -5), V(0, 10), 10},
		{"hits horizontal edge below", V(0, 0), V(0, 1), V(-5, 4), V(10, 0), 4},
		{"diagonal ray reaches vertical line", V(0, 0), FromAngle(45), V(3, 0), V(0, 1), 3 / FromAngle(45).X},
		{"parallel to vertical edge", V(0, 0), V(0, 1), V(5, 0), V(0, 10), NoIntersection},
		{"parallel to horizontal edge", V(0, 0), V(1, 0), V(0, 5), V(10, 0), NoIntersection},
		{"edge behind origin", V(0, 0), V(1, 0), V(-3, 0), V(0, 5), NoIntersection},
		{"non-cardinal edge", V(0, 0), V(1, 0), V(3, 0), V(1, 1), NoIntersection},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SegmentRayIntersectionDistance(tc.point, tc.dir, tc.point2, tc.dir2)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, 0, AngleOf(V(0, -1)), tol)
	assert.InDelta(t, 90, AngleOf(V(1, 0)), tol)
	assert.InDelta(t, 180, AngleOf(V(0, 1)), tol)
	assert.InDelta(t, 270, AngleOf(V(-1, 0)), tol)

	assert.InDelta(t, 350, NormalizeAngle(-10), tol)
	assert.InDelta(t, -20, AngleDelta(10, 350), tol)
	assert.InDelta(t, 0, LerpAngle(350, 10, 0.5), tol)
	assert.InDelta(t, 10, LerpAngle(350, 10, 2), tol)
}

func TestHalfExtents(t *testing.T) {
	x, y := HalfExtents(0, V(4, 10))
	assert.InDelta(t, 2, x, tol)
	assert.InDelta(t, 5, y, tol)

	x, y = HalfExtents(90, V(4, 10))
	assert.InDelta(t, 5, x, tol)
	assert.InDelta(t, 2, y, tol)
}
