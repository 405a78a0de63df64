package ai

import (
	"testing"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossWaitsForPlayer(t *testing.T) {
	a := newActor(0, 0, 300)
	st := &components.BossAIData{}
	w := newFakeWorld(0)

	got := StepBoss(st, a, unseen(), 16, w)
	assert.Equal(t, components.BossInitial, got)
	assert.Equal(t, 0, w.rng.i)
}

func TestBossParade(t *testing.T) {
	cfg := config.AI.Boss
	a := newActor(0, 0, 300)
	st := &components.BossAIData{}
	w := newFakeWorld(0)
	det := seen(geometry.V(1, 0), 100)

	got := StepBoss(st, a, det, 16, w)
	require.Equal(t, components.BossShootParade, got)

	StepBoss(st, a, det, 16, w)
	ring := int(360 / cfg.ParadeStep)
	require.Len(t, w.projectiles, ring)
	for _, p := range w.projectiles {
		assert.Equal(t, components.SpeciesBoss, p.Owner)
		assert.InDelta(t, cfg.ProjectileSpeed, p.Velocity.Magnitude(), 1e-9)
	}

	// Sub-cooldown gates the next ring.
	StepBoss(st, a, det, cfg.ParadeIntervalMs/2, w)
	assert.Len(t, w.projectiles, ring)

	got = StepBoss(st, a, det, cfg.ParadeDurationMs, w)
	assert.Equal(t, components.BossIdle, got)
	assert.Equal(t, cfg.IdleCooldownMs, st.CooldownMs)
}

func TestBossRumbleChargesThenDashes(t *testing.T) {
	cfg := config.AI.Boss
	speed := config.Enemy.Types["boss"].Speed
	a := newActor(0, 0, 300)
	st := &components.BossAIData{}
	w := newFakeWorld(0.99)
	det := seen(geometry.V(1, 0), 100)

	got := StepBoss(st, a, det, 16, w)
	require.Equal(t, components.BossRumble, got)
	require.True(t, st.Charging)

	StepBoss(st, a, det, cfg.RumbleChargeMs, w)
	assert.False(t, st.Charging)
	assert.InDelta(t, 90, st.Heading, 1e-9)

	StepBoss(st, a, seen(geometry.V(0, 1), 100), 16, w)
	assert.InDelta(t, speed*cfg.RumbleMultiplier, a.Motion.Velocity.X, 1e-9)

	got = StepBoss(st, a, det, cfg.RumbleDurationMs, w)
	assert.Equal(t, components.BossIdle, got)
	assert.Equal(t, geometry.Vec2{}, a.Motion.Velocity)
}

func TestBossOptionsUnlockFlee(t *testing.T) {
	threshold := config.AI.Boss.FleeThreshold

	assert.NotContains(t, BossOptions(1), components.BossFlee)
	assert.NotContains(t, BossOptions(threshold), components.BossFlee)
	assert.Contains(t, BossOptions(threshold-0.01), components.BossFlee)
	assert.Len(t, BossOptions(0), 3)
}

func TestBossIdleFleesWhenWounded(t *testing.T) {
	cfg := config.AI.Boss
	speed := config.Enemy.Types["boss"].Speed
	a := newActor(0, 0, 300)
	a.Health.Current = 30
	a.Motion.Angle = 90
	st := &components.BossAIData{State: components.BossIdle, CooldownMs: 100}
	w := newFakeWorld(0.99)
	det := seen(geometry.V(1, 0), 100)

	got := StepBoss(st, a, det, 50, w)
	assert.Equal(t, components.BossIdle, got)
	assert.Less(t, a.Motion.Angle, 90.0)

	got = StepBoss(st, a, det, 50, w)
	require.Equal(t, components.BossFlee, got)

	StepBoss(st, a, det, 16, w)
	assert.InDelta(t, -speed*cfg.FleeMultiplier, a.Motion.Velocity.X, 1e-9)

	got = StepBoss(st, a, det, cfg.FleeDurationMs, w)
	assert.Equal(t, components.BossIdle, got)
}
