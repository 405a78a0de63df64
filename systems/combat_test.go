package systems

import (
	"testing"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatKillCreditsPlayer(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 100, 100)

	queueDamage(enemy, components.DamageEventData{Amount: 500, FromPlayer: true})
	UpdateCombat(e)

	assert.Equal(t, 0, components.Health.Get(enemy).Current)
	assert.True(t, enemy.HasComponent(components.Death))
	assert.False(t, enemy.HasComponent(components.DamageEvent))
	assert.Equal(t, 1, session(t, e).Kills)
}

func TestCombatKillWithoutCredit(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 100, 100)

	queueDamage(enemy, components.DamageEventData{Amount: 500})
	UpdateCombat(e)

	assert.True(t, enemy.HasComponent(components.Death))
	assert.Equal(t, 0, session(t, e).Kills)
}

func TestCombatEnemyInvulnerability(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 100, 100)
	full := components.Health.Get(enemy).Current

	queueDamage(enemy, components.DamageEventData{Amount: 5, FromPlayer: true})
	UpdateCombat(e)
	assert.Equal(t, full-5, components.Health.Get(enemy).Current)
	assert.Equal(t, cfg.Enemy.InvulnMs, components.Enemy.Get(enemy).InvulnMs)
	assert.True(t, enemy.HasComponent(components.HealthBar))
	assert.True(t, enemy.HasComponent(components.Flash))

	// A second hit inside the window is dropped.
	queueDamage(enemy, components.DamageEventData{Amount: 5, FromPlayer: true})
	UpdateCombat(e)
	assert.Equal(t, full-5, components.Health.Get(enemy).Current)
	assert.False(t, enemy.HasComponent(components.DamageEvent))
}

func TestCombatBasicEnemyKnockedBack(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesBasic, 100, 100)

	queueDamage(enemy, components.DamageEventData{Amount: 1, KnockbackX: 50, FromPlayer: true})
	UpdateCombat(e)

	assert.Equal(t, components.BasicKnockback, components.BasicAI.Get(enemy).State)
}

func TestCombatPlayerHit(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)

	queueDamage(player, components.DamageEventData{Amount: 10, KnockbackX: 30})
	queueDamage(player, components.DamageEventData{Amount: 5, KnockbackY: 40})
	UpdateCombat(e)

	assert.Equal(t, cfg.Player.Health-15, components.Health.Get(player).Current)
	assert.Equal(t, 30.0, components.Motion.Get(player).Velocity.X)
	assert.Equal(t, 40.0, components.Motion.Get(player).Velocity.Y)
	assert.Equal(t, cfg.Player.InvulnMs, components.Player.Get(player).InvulnMs)

	queueDamage(player, components.DamageEventData{Amount: 10})
	UpdateCombat(e)
	assert.Equal(t, cfg.Player.Health-15, components.Health.Get(player).Current, "invulnerable player takes no damage")
}

func TestCombatStackedKnockbackIsCapped(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)
	enemy := factory.CreateEnemy(e, components.SpeciesBasic, 100, 100)

	queueDamage(player, components.DamageEventData{Amount: 1, KnockbackX: 300})
	queueDamage(player, components.DamageEventData{Amount: 1, KnockbackX: 300})
	queueDamage(enemy, components.DamageEventData{Amount: 1, KnockbackY: -900, FromPlayer: true})
	UpdateCombat(e)

	pv := components.Motion.Get(player).Velocity
	assert.InDelta(t, cfg.Combat.MaxKnockback, pv.X, 1e-9)
	assert.Zero(t, pv.Y)

	ev := components.Motion.Get(enemy).Velocity
	assert.Equal(t, components.BasicKnockback, components.BasicAI.Get(enemy).State)
	assert.InDelta(t, -cfg.Combat.MaxKnockback, ev.Y, 1e-9)
	assert.InDelta(t, 0, ev.X, 1e-9)
}

func TestCombatDashIgnoresKnockback(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 200)
	components.Player.Get(player).Dash.Active = true
	components.Motion.Get(player).Velocity.X = 500

	queueDamage(player, components.DamageEventData{Amount: 1, KnockbackX: -30})
	UpdateCombat(e)

	assert.Equal(t, 500.0, components.Motion.Get(player).Velocity.X)
}

func TestCombatClampsHealth(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 100, 100)
	hp := components.Health.Get(enemy)
	hp.Current = hp.Max + 50

	UpdateCombat(e)

	require.False(t, enemy.HasComponent(components.Death))
	assert.Equal(t, hp.Max, hp.Current)
}
