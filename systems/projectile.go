package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/collision"
	"github.com/automoto/amoebash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Projectiles further than this outside the level are dropped.
const offLevelMargin = 100.0

// UpdateProjectiles ages, steers and hits-tests every projectile. A
// projectile is destroyed on its first wall or target hit, when its
// lifetime runs out or when it leaves the level.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := deltaMs(ecs.World)
	var toRemove []*donburi.Entry

	var levelWidth, levelHeight float64
	if level, ok := components.Level.First(ecs.World); ok {
		if grid := components.Level.Get(level).Grid; grid != nil {
			levelWidth, levelHeight = grid.Width(), grid.Height()
		}
	}

	var playerPos *geometry.Vec2
	if playerEntry, ok := tags.Player.First(ecs.World); ok && !playerEntry.HasComponent(components.Death) {
		p := components.Motion.Get(playerEntry).Position
		playerPos = &p
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		m := components.Motion.Get(e)

		p.LifetimeMs -= dt
		if p.LifetimeMs <= 0 {
			toRemove = append(toRemove, e)
			return
		}
		if levelWidth > 0 {
			if m.Position.X < -offLevelMargin || m.Position.X > levelWidth+offLevelMargin ||
				m.Position.Y < -offLevelMargin || m.Position.Y > levelHeight+offLevelMargin {
				toRemove = append(toRemove, e)
				return
			}
		}

		if p.Homing && !p.FromPlayer() && playerPos != nil {
			steerHoming(m, p, *playerPos, dt)
		}

		obj := components.Object.Get(e)
		obj.Fit(m)
		if checkProjectileHits(e, p, m, obj) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

// steerHoming turns the projectile towards target by at most the
// configured turn rate, keeping its speed.
func steerHoming(m *components.MotionData, p *components.ProjectileData, target geometry.Vec2, dt float64) {
	delta := target.Sub(m.Position)
	if delta.Magnitude() < geometry.Epsilon {
		return
	}
	heading := m.Angle
	if m.Velocity.Magnitude() > geometry.Epsilon {
		heading = geometry.AngleOf(m.Velocity)
	}
	maxTurn := cfg.Projectile.HomingTurnRate * dt / 1000
	turn := geometry.Clamp(geometry.AngleDelta(heading, geometry.AngleOf(delta)), -maxTurn, maxTurn)

	m.Angle = geometry.NormalizeAngle(heading + turn)
	m.Velocity = geometry.FromAngle(m.Angle).MulScalar(p.Speed)
}

// checkProjectileHits runs the broad phase, then SAT against each
// candidate. Player shots hurt enemies; enemy shots hurt the player.
func checkProjectileHits(e *donburi.Entry, p *components.ProjectileData, m *components.MotionData, obj *components.ObjectData) bool {
	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvEnemy)
	if check == nil {
		return false
	}

	verts := geometry.RectangleVertices(m.Position, m.Angle, m.Scale)
	for _, o := range check.Objects {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.Entity() == e.Entity() || target.HasComponent(components.Death) {
			continue
		}
		if !target.HasComponent(components.Motion) {
			continue
		}

		isWall := o.HasTags(tags.ResolvSolid)
		isPlayer := target.HasComponent(tags.Player)
		isEnemy := target.HasComponent(tags.Enemy)
		switch {
		case isWall:
		case isEnemy && p.FromPlayer():
		case isPlayer && !p.FromPlayer():
		default:
			continue
		}

		tm := components.Motion.Get(target)
		if !collision.HasCollided(verts, geometry.RectangleVertices(tm.Position, tm.Angle, tm.Scale)) {
			continue
		}
		if isWall {
			return true
		}

		push := m.Velocity.Normalized().MulScalar(cfg.Projectile.KnockbackForce)
		queueDamage(target, components.DamageEventData{
			Amount:     p.Damage,
			KnockbackX: push.X,
			KnockbackY: push.Y,
			FromPlayer: p.FromPlayer(),
		})
		return true
	}
	return false
}
