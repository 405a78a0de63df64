package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/collision"
	"github.com/automoto/amoebash/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions pushes the player and enemies out of walls, applies
// enemy contact damage and checks the exit portal. Walls come from the
// broad phase; SAT decides the actual overlap.
func UpdateCollisions(ecs *ecs.ECS) {
	resolver := stateFor(ecs.World).resolver

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		m := components.Motion.Get(e)
		obj := components.Object.Get(e)

		angle := movementAngle(m)
		if player.Dash.Active {
			angle = player.Dash.Heading
		}
		resolveWalls(obj, m, func(wall *donburi.Entry, wm components.MotionData) {
			res := resolver.ResolvePlayer(m, angle, wall.Entity(), wm)
			if res.Collided && player.Dash.Active {
				player.Dash.Heading, m.Velocity = collision.RedirectDash(player.Dash.Heading, m.Velocity, res.Kind)
				angle = player.Dash.Heading
			}
		})

		checkEnemyContact(e, player, m, obj)
		checkPortal(ecs, obj, m)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Motion) || !e.HasComponent(components.Object) {
			return
		}
		m := components.Motion.Get(e)
		obj := components.Object.Get(e)

		angle := movementAngle(m)
		resolveWalls(obj, m, func(wall *donburi.Entry, wm components.MotionData) {
			resolver.CheckAndResolve(m, angle, wall.Entity(), wm)
		})
	})
}

// movementAngle is the heading of the velocity, or the facing when still.
func movementAngle(m *components.MotionData) float64 {
	if m.Velocity.Magnitude() > geometry.Epsilon {
		return geometry.AngleOf(m.Velocity)
	}
	return m.Angle
}

// resolveWalls fits the body, queries candidate walls and hands each to
// resolve, refitting the body after every push.
func resolveWalls(obj *components.ObjectData, m *components.MotionData, resolve func(wall *donburi.Entry, wm components.MotionData)) {
	obj.Fit(m)
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		wall, ok := o.Data.(*donburi.Entry)
		if !ok || !wall.Valid() || !wall.HasComponent(components.Motion) {
			continue
		}
		resolve(wall, *components.Motion.Get(wall))
		obj.Fit(m)
	}
}

// checkEnemyContact hurts the player when an enemy body overlaps it,
// at most once per contact cooldown.
func checkEnemyContact(playerEntry *donburi.Entry, player *components.PlayerData, m *components.MotionData, obj *components.ObjectData) {
	if player.ContactCooldownMs > 0 {
		return
	}
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	verts := geometry.RectangleVertices(m.Position, m.Angle, m.Scale)
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		enemyEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() || enemyEntry.HasComponent(components.Death) {
			continue
		}
		enemy := components.Enemy.Get(enemyEntry)
		if enemy.ContactDamage <= 0 {
			continue
		}
		em := components.Motion.Get(enemyEntry)
		if !collision.HasCollided(verts, geometry.RectangleVertices(em.Position, em.Angle, em.Scale)) {
			continue
		}

		push := m.Position.Sub(em.Position).Normalized().MulScalar(cfg.Combat.PlayerKnockback)
		queueDamage(playerEntry, components.DamageEventData{
			Amount:     enemy.ContactDamage,
			KnockbackX: push.X,
			KnockbackY: push.Y,
		})
		player.ContactCooldownMs = cfg.Combat.ContactCooldownMs
		return
	}
}

// checkPortal ends the run as won when the player touches a portal after
// the final boss is gone.
func checkPortal(ecs *ecs.ECS, obj *components.ObjectData, m *components.MotionData) {
	session := GetSession(ecs.World)
	if session == nil || session.Over {
		return
	}
	check := obj.Check(0, 0, tags.ResolvPortal)
	if check == nil {
		return
	}
	if _, bossAlive := components.FinalBossAI.First(ecs.World); bossAlive {
		return
	}

	verts := geometry.RectangleVertices(m.Position, m.Angle, m.Scale)
	for _, o := range check.ObjectsByTags(tags.ResolvPortal) {
		portal, ok := o.Data.(*donburi.Entry)
		if !ok || !portal.Valid() {
			continue
		}
		pm := components.Motion.Get(portal)
		if collision.HasCollided(verts, geometry.RectangleVertices(pm.Position, pm.Angle, pm.Scale)) {
			session.Won = true
			session.Over = true
			log.Info("portal reached", "tick", session.Tick, "kills", session.Kills)
			return
		}
	}
}
