package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIndicators points each boss arrow at its boss from the viewport
// border. Arrows hide while their boss is on screen and are removed if
// the boss is gone.
func UpdateIndicators(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	dt := deltaMs(ecs.World)

	var orphans []*donburi.Entry
	components.Indicator.Each(ecs.World, func(e *donburi.Entry) {
		ind := components.Indicator.Get(e)
		if !ecs.World.Valid(ind.Target) {
			orphans = append(orphans, e)
			return
		}
		target := ecs.World.Entry(ind.Target)
		if !target.HasComponent(components.Motion) {
			orphans = append(orphans, e)
			return
		}

		screen := components.Motion.Get(target).Position.Sub(camera.Position)
		ind.Visible = screen.X < 0 || screen.Y < 0 || screen.X > camera.Width || screen.Y > camera.Height
		if !ind.Visible {
			return
		}

		centre := geometry.V(camera.Width/2, camera.Height/2)
		dir := screen.Sub(centre).Normalized()
		ind.Angle = geometry.AngleOf(dir)
		ind.Position = borderPoint(centre, dir, cfg.Indicator.Margin)

		if ind.Pulse != nil {
			scale, _, done := ind.Pulse.Update(float32(dt))
			ind.Scale = float64(scale)
			if done {
				ind.Pulse.Reset()
			}
		}
	})

	for _, e := range orphans {
		ecs.World.Remove(e.Entity())
	}
}

// borderPoint walks from the viewport centre along dir until it is margin
// away from the nearest edge.
func borderPoint(centre, dir geometry.Vec2, margin float64) geometry.Vec2 {
	halfW := max(centre.X-margin, 0)
	halfH := max(centre.Y-margin, 0)

	t := halfW + halfH
	if dir.X != 0 {
		t = min(t, halfW/abs(dir.X))
	}
	if dir.Y != 0 {
		t = min(t, halfH/abs(dir.Y))
	}
	return centre.Add(dir.MulScalar(t))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
