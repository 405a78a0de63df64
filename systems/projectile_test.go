package systems

import (
	"testing"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/ai"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shot(owner components.Species, x, y float64) ai.ProjectileRequest {
	return ai.ProjectileRequest{
		Position: geometry.V(x, y),
		Velocity: geometry.V(0, -100),
		Damage:   7,
		Owner:    owner,
	}
}

func TestPlayerShotHitsEnemy(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 200, 200)
	p := factory.CreateProjectile(e, shot(components.SpeciesNone, 200, 205))

	UpdateProjectiles(e)

	assert.False(t, p.Valid())
	require.True(t, enemy.HasComponent(components.DamageEvent))
	ev := components.DamageEvent.Get(enemy)
	assert.Equal(t, 7, ev.Amount)
	assert.True(t, ev.FromPlayer)
	assert.InDelta(t, -cfg.Projectile.KnockbackForce, ev.KnockbackY, 1e-9)
}

func TestEnemyShotPassesEnemies(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 200, 200)
	p := factory.CreateProjectile(e, shot(components.SpeciesBoss, 200, 205))

	UpdateProjectiles(e)

	assert.True(t, p.Valid())
	assert.False(t, enemy.HasComponent(components.DamageEvent))
}

func TestEnemyShotHitsPlayer(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)
	p := factory.CreateProjectile(e, shot(components.SpeciesCharger, 200, 205))

	UpdateProjectiles(e)

	assert.False(t, p.Valid())
	require.True(t, player.HasComponent(components.DamageEvent))
	assert.False(t, components.DamageEvent.Get(player).FromPlayer)
}

func TestProjectileStopsAtWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 0, 0, 40, 480)
	p := factory.CreateProjectile(e, shot(components.SpeciesNone, 20, 100))
	obj := components.Object.Get(p).Object

	UpdateProjectiles(e)

	assert.False(t, p.Valid())
	assert.Nil(t, obj.Space)
}

func TestProjectileExpires(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreateProjectile(e, shot(components.SpeciesNone, 300, 300))
	components.Projectile.Get(p).LifetimeMs = 10

	UpdateProjectiles(e)

	assert.False(t, p.Valid())
}

func TestProjectileLeavesLevel(t *testing.T) {
	e := newTestECS(t)
	p := factory.CreateProjectile(e, shot(components.SpeciesNone, -offLevelMargin-50, 100))

	UpdateProjectiles(e)

	assert.False(t, p.Valid())
}

func TestHomingTurnIsRateLimited(t *testing.T) {
	cfg.Reset()
	m := &components.MotionData{Velocity: geometry.V(0, -100)}
	p := &components.ProjectileData{Speed: 100, Homing: true}

	// Target is straight right; one 100ms step turns at most rate/10 degrees.
	steerHoming(m, p, geometry.V(1000, 0), 100)

	assert.InDelta(t, cfg.Projectile.HomingTurnRate/10, m.Angle, 1e-9)
	assert.InDelta(t, 100, m.Velocity.Magnitude(), 1e-9)
}
