package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/ai"
	"github.com/automoto/amoebash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile described by req. Its facing
// follows its velocity.
func CreateProjectile(ecs *ecs.ECS, req ai.ProjectileRequest) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := req.Size
	if size.X <= 0 || size.Y <= 0 {
		size = geometry.V(cfg.Projectile.Size, cfg.Projectile.Size)
	}

	m := components.MotionData{
		Position: req.Position,
		Velocity: req.Velocity,
		Scale:    size,
	}
	if req.Velocity.Magnitude() > geometry.Epsilon {
		m.Angle = geometry.AngleOf(req.Velocity)
	}
	components.Motion.SetValue(p, m)

	// Create collision object
	obj := resolv.NewObject(m.Position.X-size.X/2, m.Position.Y-size.Y/2, size.X, size.Y, tags.ResolvProjectile)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.SetValue(p, components.ProjectileData{
		Damage:     req.Damage,
		Owner:      req.Owner,
		Homing:     req.Homing,
		Speed:      req.Velocity.Magnitude(),
		LifetimeMs: cfg.Projectile.LifetimeMs,
	})

	return p
}
