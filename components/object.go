package components

import (
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broad-phase body in the resolv space.
// The body is an axis-aligned box around the entity's oriented rectangle.
type ObjectData struct {
	*resolv.Object
}

// Fit moves and resizes the body to the bounding box of m and refreshes
// its cells in the space.
func (o *ObjectData) Fit(m *MotionData) {
	minX, minY, maxX, maxY := geometry.Bounds(geometry.RectangleVertices(m.Position, m.Angle, m.Scale))
	o.X, o.Y = minX, minY
	o.W, o.H = maxX-minX, maxY-minY
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
