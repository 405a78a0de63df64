package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the world position of the viewport's top-left corner.
type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64
}

var Camera = donburi.NewComponentType[CameraData]()
