package ai

import (
	"math"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/gamemath"
	"github.com/automoto/amoebash/shared/geometry"
)

// StepBasic drives the patrolling melee enemy. It patrols along x around
// its origin, dashes at the player once detected and self-destructs after
// touching the player for long enough. Boss-spawned minions start in
// Chasing and pursue the player from anywhere.
func StepBasic(st *components.BasicAIData, a Actor, det Detection, dtMs float64, w World) components.BasicState {
	cfg := config.AI.Basic
	m := a.Motion

	switch st.State {
	case components.BasicPatrolling:
		if det.Within {
			enterDash(st, cfg)
			dash(st, a, det, dtMs, w, cfg)
			break
		}
		patrol(st, m, cfg)

	case components.BasicChasing:
		if det.Within {
			enterDash(st, cfg)
			dash(st, a, det, dtMs, w, cfg)
			break
		}
		m.Velocity = det.Direction.MulScalar(cfg.ChaseSpeed)
		m.Angle = geometry.AngleOf(det.Direction)
		st.PrevX = m.Position.X

	case components.BasicDashing:
		if !det.Within {
			// Patrol again from wherever the chase ended.
			st.State = components.BasicPatrolling
			st.Origin = m.Position
			st.ContactTimerMs = cfg.ContactTimerMs
			st.TargetVelocityX = 0
			st.PrevX = m.Position.X
			stop(m)
			break
		}
		dash(st, a, det, dtMs, w, cfg)

	case components.BasicKnockback:
		m.Velocity = gamemath.Decay(m.Velocity, cfg.KnockbackDecay, dtMs, gamemath.RefTickMs)
		st.KnockbackTimerMs -= dtMs
		if st.KnockbackTimerMs <= 0 {
			enterDash(st, cfg)
		}
		st.PrevX = m.Position.X
	}

	animate(a, components.SpeciesBasic, st.State.String())
	return st.State
}

// EnterKnockback pushes a basic enemy along impulse and starts the
// knockback window. Combat calls it when the enemy is hit.
func EnterKnockback(st *components.BasicAIData, m *components.MotionData, impulse geometry.Vec2) {
	st.State = components.BasicKnockback
	st.KnockbackTimerMs = config.AI.Basic.KnockbackMs
	m.Velocity = impulse
}

func enterDash(st *components.BasicAIData, cfg config.BasicConfig) {
	st.State = components.BasicDashing
	st.ContactTimerMs = cfg.ContactTimerMs
}

func patrol(st *components.BasicAIData, m *components.MotionData, cfg config.BasicConfig) {
	if st.Direction == 0 {
		st.Direction = 1
	}

	// A commanded move that produced no displacement means a wall is in the way.
	stalled := st.TargetVelocityX != 0 && math.Abs(m.Position.X-st.PrevX) < cfg.StallDistance
	switch {
	case stalled:
		st.Direction = -st.Direction
	case st.Direction > 0 && m.Position.X >= st.Origin.X+st.Range:
		st.Direction = -1
	case st.Direction < 0 && m.Position.X <= st.Origin.X-st.Range:
		st.Direction = 1
	}

	st.TargetVelocityX = st.Direction * cfg.PatrolSpeed
	m.Velocity = geometry.V(st.TargetVelocityX, 0)
	if st.Direction > 0 {
		m.Angle = 90
	} else {
		m.Angle = 270
	}
	st.PrevX = m.Position.X
}

func dash(st *components.BasicAIData, a Actor, det Detection, dtMs float64, w World, cfg config.BasicConfig) {
	m := a.Motion
	m.Velocity = det.Direction.MulScalar(cfg.DashSpeed)
	m.Angle = geometry.AngleOf(det.Direction)
	st.PrevX = m.Position.X

	if det.Distance >= cfg.ContactRadius {
		return
	}
	st.ContactTimerMs -= dtMs
	if st.ContactTimerMs <= 0 {
		a.Health.Current = 0
		w.DamagePlayer(cfg.ContactDamage)
		st.ContactTimerMs = cfg.ContactTimerMs
	}
}
