package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MotionData is the oriented rectangle of anything that moves or collides.
// Angle is in degrees, 0 = up, clockwise positive. Velocity is in world
// units per second. Scale.X spans the rectangle's right axis and Scale.Y its
// forward axis.
type MotionData struct {
	Position math.Vec2
	Velocity math.Vec2
	Scale    math.Vec2
	Angle    float64
}

var Motion = donburi.NewComponentType[MotionData]()
