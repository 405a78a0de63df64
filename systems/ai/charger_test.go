package ai

import (
	"math"
	"testing"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargerFullCycle(t *testing.T) {
	cfg := config.AI.Charger
	a := newActor(0, 0, 45)
	st := &components.ChargerAIData{}
	w := newFakeWorld()
	det := seen(geometry.V(0, 1), 100)

	got := StepCharger(st, a, det, 16, w)
	require.Equal(t, components.ChargerHunt, got)
	assert.True(t, st.Charging)
	assert.InDelta(t, 180, a.Motion.Angle, 1e-9)
	assert.Equal(t, geometry.Vec2{}, a.Motion.Velocity)

	got = StepCharger(st, a, det, cfg.ChargeMs, w)
	require.Equal(t, components.ChargerPierce, got)
	assert.InDelta(t, 180, st.Heading, 1e-9)
	assert.InDelta(t, cfg.PierceSpeed, a.Motion.Velocity.Y, 1e-9)

	// The heading stays locked even if the player moves.
	got = StepCharger(st, a, seen(geometry.V(1, 0), 100), cfg.PierceMs/2, w)
	require.Equal(t, components.ChargerPierce, got)
	assert.InDelta(t, cfg.PierceSpeed, a.Motion.Velocity.Y, 1e-9)

	got = StepCharger(st, a, det, cfg.PierceMs/2, w)
	require.Equal(t, components.ChargerShoot, got)
	assert.Equal(t, geometry.Vec2{}, a.Motion.Velocity)

	got = StepCharger(st, a, det, 16, w)
	require.Equal(t, components.ChargerShoot, got)
	require.Len(t, w.projectiles, 1)
	p := w.projectiles[0]
	assert.Equal(t, components.SpeciesCharger, p.Owner)
	assert.Equal(t, cfg.ProjectileDamage, p.Damage)
	assert.InDelta(t, cfg.ProjectileSpeed, p.Velocity.Y, 1e-9)
	// Facing relaxes toward 0 from the pierce heading.
	assert.Less(t, math.Abs(geometry.AngleDelta(a.Motion.Angle, 0)), 180.0)

	StepCharger(st, a, det, cfg.ShootCooldownMs, w)
	assert.Len(t, w.projectiles, 2)

	got = StepCharger(st, a, det, cfg.ShootWindowMs, w)
	assert.Equal(t, components.ChargerHunt, got)
}

func TestChargerCancelsChargeWhenPlayerLeaves(t *testing.T) {
	a := newActor(0, 0, 45)
	st := &components.ChargerAIData{}
	w := newFakeWorld()

	StepCharger(st, a, seen(geometry.V(1, 0), 50), 16, w)
	require.True(t, st.Charging)

	got := StepCharger(st, a, unseen(), 16, w)
	assert.Equal(t, components.ChargerHunt, got)
	assert.False(t, st.Charging)
}

func TestChargerShootReturnsToHuntWhenPlayerLeaves(t *testing.T) {
	a := newActor(0, 0, 45)
	st := &components.ChargerAIData{State: components.ChargerShoot, ShootWindowMs: 1000}
	w := newFakeWorld()

	got := StepCharger(st, a, unseen(), 16, w)
	assert.Equal(t, components.ChargerHunt, got)
	assert.Empty(t, w.projectiles)
}
