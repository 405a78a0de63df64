package systems

import (
	"math"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/tags"
	"github.com/yohamta/donburi/ecs"
)

const cameraFollowSmoothing = 0.15

// UpdateCamera eases the viewport towards the player, keeping it inside
// the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Motion.Get(playerEntry).Position

	targetX := target.X - camera.Width/2
	targetY := target.Y - camera.Height/2

	if levelEntry, ok := components.Level.First(e.World); ok {
		if grid := components.Level.Get(levelEntry).Grid; grid != nil {
			targetX = clampCamera(targetX, grid.Width()-camera.Width)
			targetY = clampCamera(targetY, grid.Height()-camera.Height)
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * cameraFollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cameraFollowSmoothing
}

// clampCamera keeps a viewport offset in [0, limit]. Levels smaller than
// the screen pin to 0.
func clampCamera(v, limit float64) float64 {
	return math.Max(0, math.Min(math.Max(limit, 0), v))
}
