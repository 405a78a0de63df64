package ai

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/shared/leveldata"
)

// MaxPhase is the final boss's last phase.
const MaxPhase = 3

// ContourParams returns the border thickness in cells and the per-cell
// spawn chance for a final boss phase. Phases outside 1..MaxPhase are
// clamped.
func ContourParams(phase int) (thickness int, chance float64) {
	i := min(max(phase, 1), MaxPhase) - 1
	cfg := config.AI.FinalBoss
	return cfg.ContourThickness[i], cfg.SpawnChance[i]
}

// StepFinalBoss drives the three phase final boss. Each phase spawns
// minions along the arena border, waits for all of them to die, shoots a
// spiral and then tires. Losing enough health while tired escalates the
// phase; it never goes back down.
func StepFinalBoss(st *components.FinalBossAIData, a Actor, det Detection, dtMs float64, w World) components.FinalBossState {
	cfg := config.AI.FinalBoss
	m := a.Motion
	stop(m)

	switch st.State {
	case components.FinalBossInitial:
		if det.Within {
			st.Phase = max(st.Phase, 1)
			enterSpawn(st)
		}

	case components.FinalBossSpawn:
		if !st.Spawned {
			SpawnContour(w, st.Phase)
			st.Spawned = true
			break
		}
		if w.MinionCount() == 0 {
			st.State = components.FinalBossSpiralShoot
			st.DurationMs = cfg.SpiralDurationMs
			st.SubCooldownMs = 0
		}

	case components.FinalBossSpiralShoot:
		st.SubCooldownMs -= dtMs
		if st.SubCooldownMs <= 0 {
			fireSpiral(w, m, det, st.Phase, cfg)
			st.SubCooldownMs = cfg.SpiralIntervalMs
		}
		st.DurationMs -= dtMs
		if st.DurationMs <= 0 {
			st.State = components.FinalBossTired
			st.CooldownMs = cfg.TiredCooldownMs
		}

	case components.FinalBossTired:
		if next := PhaseForHealth(a.Health.Ratio()); next > st.Phase {
			st.Phase = next
			enterSpawn(st)
			break
		}
		st.CooldownMs -= dtMs
		if st.CooldownMs <= 0 {
			enterSpawn(st)
		}
	}

	animate(a, components.SpeciesFinalBoss, st.State.String())
	return st.State
}

// PhaseForHealth is the phase a final boss at this health ratio has earned.
func PhaseForHealth(ratio float64) int {
	switch {
	case ratio < 1.0/3:
		return 3
	case ratio < 2.0/3:
		return 2
	default:
		return 1
	}
}

func enterSpawn(st *components.FinalBossAIData) {
	st.State = components.FinalBossSpawn
	st.Spawned = false
}

// SpawnContour rolls once per empty cell within the phase's border
// thickness and asks for a minion on each success. It returns the number
// of minions requested.
func SpawnContour(w World, phase int) int {
	grid := w.Grid()
	if grid == nil {
		return 0
	}
	thickness, chance := ContourParams(phase)
	rng := w.RNG()

	n := 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if grid.BorderDistance(col, row) >= thickness || grid.At(col, row) != leveldata.TileEmpty {
				continue
			}
			if rng.Float64() < chance {
				w.SpawnMinion(grid.CellCenter(col, row))
				n++
			}
		}
	}
	return n
}

func fireSpiral(w World, m *components.MotionData, det Detection, phase int, cfg config.FinalBossConfig) {
	size := sizeOf(components.SpeciesFinalBoss)
	step := 360 / float64(cfg.RingCount)

	switch phase {
	case 1:
		base := w.RNG().Float64() * 360
		fireRing(w, m.Position, size, base, step, cfg.ProjectileSpeed, cfg.ProjectileDamage, components.SpeciesFinalBoss)
	case 2:
		base := w.RNG().Float64() * 360
		fireRing(w, m.Position, size, base, step, cfg.ProjectileSpeed, cfg.ProjectileDamage, components.SpeciesFinalBoss)
		fireRing(w, m.Position, size, base+step/2, step, cfg.ProjectileSpeed, cfg.ProjectileDamage, components.SpeciesFinalBoss)
	default:
		right := geometry.Perp(det.Direction)
		for _, side := range []float64{-1, 1} {
			pos := m.Position.Add(right.MulScalar(side*cfg.FlankOffset))
			req := projectileFrom(pos, 0, det.Direction, cfg.HomingSpeed, cfg.ProjectileDamage, components.SpeciesFinalBoss)
			req.Homing = true
			w.SpawnProjectile(req)
		}
	}
}
