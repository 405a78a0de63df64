package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IndicatorData is the off-screen arrow pointing at a boss.
type IndicatorData struct {
	Target  donburi.Entity
	Visible bool
	// Position is in screen space, clamped to the viewport border.
	Position math.Vec2
	Angle    float64
	Pulse    *gween.Sequence
	Scale    float64
}

var Indicator = donburi.NewComponentType[IndicatorData]()
