// Package ai holds the per-species enemy state machines and the detection
// query they share.
//
// Machines are plain functions of the entity's state, its components, the
// tick's detection result and an explicit World. They never touch the ECS
// directly: spawns and player damage go through World so the caller can
// stage them until its iteration is done.
package ai

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/shared/leveldata"
)

// RNG is a uniform source in [0, 1). *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

// ProjectileRequest asks the world to create a projectile.
type ProjectileRequest struct {
	Position geometry.Vec2
	Size     geometry.Vec2
	Velocity geometry.Vec2
	Damage   int
	Owner    components.Species
	Homing   bool
}

// World is everything a machine may read or ask for besides its own entity.
type World interface {
	RNG() RNG
	NowMs() float64
	SpawnProjectile(req ProjectileRequest)
	SpawnMinion(pos geometry.Vec2)
	DamagePlayer(amount int)
	MinionCount() int
	// Grid may return nil when no level is loaded.
	Grid() *leveldata.Grid
}

// Actor is the entity a machine drives. Motion and Health are never nil;
// Animation may be.
type Actor struct {
	Motion    *components.MotionData
	Health    *components.HealthData
	Animation *components.AnimationData
}

// Detection is the player-relative geometry of one enemy for one tick.
type Detection struct {
	Distance float64
	// Direction is the unit vector from the enemy to the player.
	Direction geometry.Vec2
	Within    bool
}

// Detect measures the player from the enemy. Within holds when the distance
// is below radiusMultiplier*baseRadius*playerRange. A player sitting exactly
// on the enemy yields distance 0 and direction up.
func Detect(playerPos, enemyPos geometry.Vec2, radiusMultiplier, baseRadius, playerRange float64) Detection {
	delta := playerPos.Sub(enemyPos)
	dist := delta.Magnitude()

	det := Detection{Distance: dist, Direction: geometry.Up}
	if dist < geometry.Epsilon {
		det.Distance = 0
	} else {
		det.Direction = delta.MulScalar(1/dist)
	}
	det.Within = det.Distance < radiusMultiplier*baseRadius*playerRange
	return det
}

func animate(a Actor, species components.Species, state string) {
	if a.Animation == nil {
		return
	}
	if def, ok := config.AnimationFor(species.String(), state); ok {
		a.Animation.SetRange(def.First, def.Last)
	}
}

func speedOf(species components.Species) float64 {
	return config.Enemy.Types[species.String()].Speed
}

func sizeOf(species components.Species) float64 {
	t := config.Enemy.Types[species.String()]
	return max(t.Width, t.Height)
}

// pick chooses uniformly among options with one draw from rng.
func pick[T any](rng RNG, options []T) T {
	i := int(rng.Float64() * float64(len(options)))
	if i >= len(options) {
		i = len(options) - 1
	}
	return options[i]
}

func stop(m *components.MotionData) {
	m.Velocity = geometry.Vec2{}
}

// projectileFrom builds a request for a projectile leaving the rim of an
// entity of the given size along dir.
func projectileFrom(pos geometry.Vec2, size float64, dir geometry.Vec2, speed float64, damage int, owner components.Species) ProjectileRequest {
	s := config.Projectile.Size
	return ProjectileRequest{
		Position: pos.Add(dir.MulScalar(size/2)),
		Size:     geometry.V(s, s),
		Velocity: dir.MulScalar(speed),
		Damage:   damage,
		Owner:    owner,
	}
}
