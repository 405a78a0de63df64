package systems

import (
	"image/color"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Culling padding around the viewport, in world units.
const cullPadding = 64.0

// DrawEntities outlines every player, enemy and projectile as its oriented
// rectangle, with a tick along the forward axis.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Wall) || e.HasComponent(tags.Portal) {
			return
		}
		m := components.Motion.Get(e)
		if !inView(camera, m) {
			return
		}
		// The outline swells as the current animation range plays.
		width := float32(1)
		if e.HasComponent(components.Animation) {
			if anim := components.Animation.Get(e).CurrentAnimation; anim != nil {
				width += float32(anim.Progress())
			}
		}
		drawOrientedRect(screen, camera, m, entityColor(e), width)
	})
}

func entityColor(e *donburi.Entry) color.RGBA {
	var c color.RGBA
	switch {
	case e.HasComponent(tags.Player):
		c = cfg.Blue
	case e.HasComponent(tags.Projectile):
		c = cfg.Yellow
		if components.Projectile.Get(e).FromPlayer() {
			c = cfg.LightBlue
		}
	case e.HasComponent(components.Enemy):
		c = cfg.Enemy.Types[components.Enemy.Get(e).Species.String()].TintColor
	}
	if c.A == 0 {
		c = cfg.White
	}

	if e.HasComponent(components.Flash) {
		f := components.Flash.Get(e)
		c = color.RGBA{R: uint8(255 * f.R), G: uint8(255 * f.G), B: uint8(255 * f.B), A: c.A}
	}
	if e.HasComponent(components.Death) {
		c.A /= 3
	}
	return c
}

func drawOrientedRect(screen *ebiten.Image, camera *components.CameraData, m *components.MotionData, c color.RGBA, width float32) {
	v := geometry.RectangleVertices(m.Position, m.Angle, m.Scale)
	for i := range v {
		a, b := v[i], v[(i+1)%len(v)]
		vector.StrokeLine(screen,
			float32(a.X-camera.Position.X), float32(a.Y-camera.Position.Y),
			float32(b.X-camera.Position.X), float32(b.Y-camera.Position.Y),
			width, c, false)
	}

	nose := m.Position.Add(geometry.FromAngle(m.Angle).MulScalar(m.Scale.Y/2))
	vector.StrokeLine(screen,
		float32(m.Position.X-camera.Position.X), float32(m.Position.Y-camera.Position.Y),
		float32(nose.X-camera.Position.X), float32(nose.Y-camera.Position.Y),
		1, c, false)
}

func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) || !e.HasComponent(components.Motion) {
			return
		}
		m := components.Motion.Get(e)
		if !inView(camera, m) {
			return
		}
		hp := components.Health.Get(e)

		// Health bar dimensions and position
		barWidth := 32.0
		barHeight := 4.0
		// Position the bar above the entity's bounding box
		_, minY, _, _ := geometry.Bounds(geometry.RectangleVertices(m.Position, m.Angle, m.Scale))
		drawX := m.Position.X - barWidth/2 - camera.Position.X
		drawY := minY - barHeight - 4 - camera.Position.Y

		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barWidth*hp.Ratio()), float32(barHeight), cfg.Green, false)
	})
}

// DrawIndicators draws each visible boss arrow as a triangle in screen
// space.
func DrawIndicators(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Indicator.Each(ecs.World, func(e *donburi.Entry) {
		ind := components.Indicator.Get(e)
		if !ind.Visible {
			return
		}
		size := cfg.Indicator.Size * ind.Scale
		fwd := geometry.FromAngle(ind.Angle)
		right := geometry.Perp(fwd)

		tip := ind.Position.Add(fwd.MulScalar(size))
		back := ind.Position.Sub(fwd.MulScalar(size/2))
		left := back.Sub(right.MulScalar(size/2))
		rightPt := back.Add(right.MulScalar(size/2))

		for _, seg := range [][2]geometry.Vec2{{tip, left}, {left, rightPt}, {rightPt, tip}} {
			vector.StrokeLine(screen,
				float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y),
				2, cfg.Red, true)
		}
	})
}

func cameraOf(ecs *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false // No camera yet
	}
	return components.Camera.Get(cameraEntry), true
}

func inView(camera *components.CameraData, m *components.MotionData) bool {
	r := max(m.Scale.X, m.Scale.Y)
	return m.Position.X+r >= camera.Position.X-cullPadding &&
		m.Position.X-r <= camera.Position.X+camera.Width+cullPadding &&
		m.Position.Y+r >= camera.Position.Y-cullPadding &&
		m.Position.Y-r <= camera.Position.Y+camera.Height+cullPadding
}
