package systems

import (
	"image/color"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DebugEnabled turns on the broad-phase overlay. F1 toggles it.
var DebugEnabled bool

// UpdateDebugToggle flips the overlay on F1.
func UpdateDebugToggle(_ *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		DebugEnabled = !DebugEnabled
	}
}

// DrawDebug outlines every resolv body in view.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !DebugEnabled {
		return
	}
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	viewX, viewY := camera.Position.X, camera.Position.Y
	viewW, viewH := camera.Width, camera.Height

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		x := obj.X - viewX
		y := obj.Y - viewY

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255} // Grey
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255} // Blue
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255} // Red
		case obj.HasTags(tags.ResolvProjectile):
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
