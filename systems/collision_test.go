package systems

import (
	"testing"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerPushedOutOfWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 0, 0, 40, 480)
	player := factory.CreatePlayer(e, 48, 100)
	m := components.Motion.Get(player)
	m.Velocity = geometry.V(-100, 0)

	UpdateCollisions(e)

	want := 40 + cfg.Player.Width/2 + cfg.Collision.Margin
	assert.InDelta(t, want, m.Position.X, 1e-9)
	assert.InDelta(t, 100, m.Position.Y, 1e-9)
}

func TestEnemyPushedOutOfWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 0, 200, 640, 40)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 300, 195)
	m := components.Motion.Get(enemy)
	m.Velocity = geometry.V(0, 50)

	UpdateCollisions(e)

	assert.InDelta(t, 200-m.Scale.Y/2-cfg.Collision.Margin, m.Position.Y, 1e-9)
}

func TestEnemyContactDamage(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 210, 200)

	UpdateCollisions(e)

	require.True(t, player.HasComponent(components.DamageEvent))
	ev := components.DamageEvent.Get(player)
	assert.Equal(t, components.Enemy.Get(enemy).ContactDamage, ev.Amount)
	assert.Less(t, ev.KnockbackX, 0.0, "pushed away from the enemy")
	assert.Equal(t, cfg.Combat.ContactCooldownMs, components.Player.Get(player).ContactCooldownMs)

	// No second hit while the cooldown runs.
	UpdateCollisions(e)
	assert.Equal(t, components.Enemy.Get(enemy).ContactDamage, components.DamageEvent.Get(player).Amount)
}

func TestPortalNeedsFinalBossGone(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePortal(e, 180, 180, 40, 40)
	factory.CreatePlayer(e, 200, 200)
	boss := factory.CreateEnemy(e, components.SpeciesFinalBoss, 500, 400)

	UpdateCollisions(e)
	require.False(t, session(t, e).Over)

	destroyEntity(e, boss)
	UpdateCollisions(e)

	s := session(t, e)
	assert.True(t, s.Over)
	assert.True(t, s.Won)
}
