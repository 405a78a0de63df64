package ai

import (
	"math/rand"
	"testing"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContourParams(t *testing.T) {
	tests := []struct {
		phase     int
		thickness int
		chance    float64
	}{
		{1, 2, 0.4},
		{2, 3, 0.6},
		{3, 4, 0.85},
		{0, 2, 0.4},
		{7, 4, 0.85},
	}
	for _, tc := range tests {
		thickness, chance := ContourParams(tc.phase)
		assert.Equal(t, tc.thickness, thickness, "phase %d", tc.phase)
		assert.Equal(t, tc.chance, chance, "phase %d", tc.phase)
	}
}

func TestSpawnContour(t *testing.T) {
	tests := []struct {
		name  string
		phase int
		roll  float64
		want  int
	}{
		{"phase 1 every roll succeeds", 1, 0, 24},
		{"phase 1 roll above chance", 1, 0.5, 0},
		{"phase 2 roll below chance", 2, 0.5, 40},
		{"phase 3 whole interior", 3, 0.8, 48},
		{"phase 3 roll above chance", 3, 0.9, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newFakeWorld(tc.roll)
			w.grid = borderedGrid(10, 8)

			n := SpawnContour(w, tc.phase)
			assert.Equal(t, tc.want, n)
			assert.Len(t, w.minions, tc.want)

			// One roll per eligible cell, never a retry.
			thickness, _ := ContourParams(tc.phase)
			eligible := 0
			for row := 0; row < 8; row++ {
				for col := 0; col < 10; col++ {
					if w.grid.BorderDistance(col, row) < thickness && w.grid.At(col, row) == 0 {
						eligible++
					}
				}
			}
			assert.Equal(t, eligible, w.rng.i)
		})
	}
}

func TestSpawnContourPlacesMinionsOnCellCentres(t *testing.T) {
	w := newFakeWorld(0)
	w.grid = borderedGrid(4, 4)

	SpawnContour(w, 1)
	require.Len(t, w.minions, 4)
	assert.Contains(t, w.minions, w.grid.CellCenter(1, 1))
	assert.Contains(t, w.minions, w.grid.CellCenter(2, 2))
}

func TestSpawnContourWithoutGrid(t *testing.T) {
	w := newFakeWorld(0)
	assert.Equal(t, 0, SpawnContour(w, 1))
}

func TestFinalBossCycle(t *testing.T) {
	cfg := config.AI.FinalBoss
	a := newActor(0, 0, 600)
	st := &components.FinalBossAIData{}
	w := newFakeWorld(0.5)
	det := seen(geometry.V(1, 0), 100)

	require.Equal(t, components.FinalBossInitial, StepFinalBoss(st, a, unseen(), 16, w))
	require.Equal(t, components.FinalBossSpawn, StepFinalBoss(st, a, det, 16, w))
	assert.Equal(t, 1, st.Phase)

	// Spawning happens once, then the boss waits for the minions to die.
	StepFinalBoss(st, a, det, 16, w)
	assert.True(t, st.Spawned)
	w.minionCount = 3
	require.Equal(t, components.FinalBossSpawn, StepFinalBoss(st, a, det, 16, w))
	w.minionCount = 0
	require.Equal(t, components.FinalBossSpiralShoot, StepFinalBoss(st, a, det, 16, w))

	StepFinalBoss(st, a, det, 16, w)
	assert.Len(t, w.projectiles, cfg.RingCount)

	require.Equal(t, components.FinalBossTired, StepFinalBoss(st, a, det, cfg.SpiralDurationMs, w))

	// Below two thirds health the next spawn is phase 2.
	a.Health.Current = 350
	require.Equal(t, components.FinalBossSpawn, StepFinalBoss(st, a, det, 16, w))
	assert.Equal(t, 2, st.Phase)
	assert.False(t, st.Spawned)
}

func TestFinalBossTiredCoolsDownAtSamePhase(t *testing.T) {
	cfg := config.AI.FinalBoss
	a := newActor(0, 0, 600)
	st := &components.FinalBossAIData{State: components.FinalBossTired, Phase: 2, CooldownMs: cfg.TiredCooldownMs}
	w := newFakeWorld()

	// Full health never lowers the phase.
	require.Equal(t, components.FinalBossTired, StepFinalBoss(st, a, unseen(), cfg.TiredCooldownMs/2, w))
	require.Equal(t, components.FinalBossSpawn, StepFinalBoss(st, a, unseen(), cfg.TiredCooldownMs/2, w))
	assert.Equal(t, 2, st.Phase)
}

func TestFinalBossSpiralPerPhase(t *testing.T) {
	cfg := config.AI.FinalBoss

	for phase, want := range map[int]int{1: cfg.RingCount, 2: 2 * cfg.RingCount, 3: 2} {
		a := newActor(0, 0, 600)
		st := &components.FinalBossAIData{State: components.FinalBossSpiralShoot, Phase: phase, DurationMs: 1000}
		w := newFakeWorld(0.25)

		StepFinalBoss(st, a, seen(geometry.V(1, 0), 100), 16, w)
		require.Len(t, w.projectiles, want, "phase %d", phase)

		homing := 0
		for _, p := range w.projectiles {
			if p.Homing {
				homing++
			}
		}
		if phase == 3 {
			assert.Equal(t, 2, homing)
			assert.NotEqual(t, w.projectiles[0].Position, w.projectiles[1].Position)
		} else {
			assert.Zero(t, homing)
		}
	}
}

func TestFinalBossPhaseNeverDecreases(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	a := newActor(0, 0, 600)
	st := &components.FinalBossAIData{}
	w := newFakeWorld(0.1, 0.7, 0.3, 0.95)
	w.grid = borderedGrid(8, 8)

	last := 0
	for range 5000 {
		a.Health.Current = r.Intn(601)
		w.minionCount = r.Intn(3)
		det := unseen()
		if r.Float64() < 0.8 {
			det = seen(geometry.V(r.Float64()-0.5, r.Float64()-0.5), r.Float64()*300)
		}

		got := StepFinalBoss(st, a, det, r.Float64()*500, w)
		require.LessOrEqual(t, got, components.FinalBossTired)
		require.GreaterOrEqual(t, st.Phase, last)
		require.LessOrEqual(t, st.Phase, MaxPhase)
		last = st.Phase
	}
	assert.Equal(t, MaxPhase, last)
}

func TestPhaseForHealth(t *testing.T) {
	assert.Equal(t, 1, PhaseForHealth(1))
	assert.Equal(t, 1, PhaseForHealth(2.0/3))
	assert.Equal(t, 2, PhaseForHealth(0.5))
	assert.Equal(t, 3, PhaseForHealth(0.2))
}
