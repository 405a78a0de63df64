package ai

import (
	"math"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/gamemath"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RingTarget is the slot for orbiter index out of count on the ring around
// the player.
func RingTarget(player geometry.Vec2, index, count int, radius float64) geometry.Vec2 {
	if count <= 0 {
		count = 1
	}
	angle := 360 * float64(index) / float64(count)
	return player.Add(geometry.FromAngle(angle).MulScalar(radius))
}

// StepOrbiter drives the ring-forming enemy. st.Target must already hold
// this tick's ring slot. Undetected it idles with a small drift; detected
// it homes on its slot with a speed that falls off close to the target.
func StepOrbiter(st *components.OrbiterAIData, a Actor, det Detection, dtMs float64, w World) components.OrbiterState {
	cfg := config.AI.Orbiter
	m := a.Motion

	switch st.State {
	case components.OrbiterPatrolling:
		if det.Within {
			st.State = components.OrbiterChasing
			st.SpeedFactor = cfg.StartingFactor
			st.Ramp = gween.New(float32(cfg.StartingFactor), 1, float32(cfg.RampMs), ease.OutQuad)
			homeOnTarget(st, m, cfg)
			break
		}
		idleDrift(st, m, dtMs, w.NowMs(), cfg)

	case components.OrbiterChasing:
		if !det.Within {
			st.State = components.OrbiterPatrolling
			st.Ramp = nil
			idleDrift(st, m, dtMs, w.NowMs(), cfg)
			break
		}
		if st.Ramp != nil {
			f, done := st.Ramp.Update(float32(dtMs))
			st.SpeedFactor = float64(f)
			if done {
				st.Ramp = nil
				st.SpeedFactor = 1
			}
		}
		homeOnTarget(st, m, cfg)
	}

	animate(a, components.SpeciesOrbiter, st.State.String())
	return st.State
}

// OrbitVelocity is the commanded velocity toward a target delta away, for
// an orbiter whose full speed is speed.
func OrbitVelocity(delta geometry.Vec2, speed float64, cfg config.OrbiterConfig) geometry.Vec2 {
	d := delta.Magnitude()
	dir := delta.Normalized()

	switch {
	case d <= cfg.SnapDistance:
		return delta.MulScalar(cfg.HomingGain)
	case d <= cfg.NearDistance:
		return dir.MulScalar(cfg.CrawlSpeed)
	case d <= cfg.FarDistance:
		t := (d - cfg.NearDistance) / (cfg.FarDistance - cfg.NearDistance)
		return dir.MulScalar(cfg.CrawlSpeed+(speed-cfg.CrawlSpeed)*t)
	default:
		return dir.MulScalar(speed)
	}
}

func homeOnTarget(st *components.OrbiterAIData, m *components.MotionData, cfg config.OrbiterConfig) {
	delta := st.Target.Sub(m.Position)
	speed := speedOf(components.SpeciesOrbiter) * st.SpeedFactor
	m.Velocity = OrbitVelocity(delta, speed, cfg)
	if delta.Magnitude() > geometry.Epsilon {
		m.Angle = geometry.LerpAngle(m.Angle, geometry.AngleOf(delta), cfg.TurnRate)
	}
}

// idleDrift eases the velocity toward a slow circular drift whose phase
// depends on the clock and the orbiter's index. Orbiters that wandered out
// of their home range drift back toward the origin.
func idleDrift(st *components.OrbiterAIData, m *components.MotionData, dtMs, nowMs float64, cfg config.OrbiterConfig) {
	phase := 2*math.Pi*nowMs/cfg.DriftPeriodMs + float64(st.Index)*math.Pi/3
	drift := geometry.V(math.Cos(phase)*cfg.DriftSpeed, math.Sin(phase)*cfg.DriftSpeed)

	home := st.Origin.Sub(m.Position)
	if st.Range > 0 && home.Magnitude() > st.Range {
		drift = drift.Add(home.Normalized().MulScalar(cfg.DriftSpeed))
	}

	keep := math.Pow(cfg.IdleDecay, dtMs/gamemath.RefTickMs)
	m.Velocity = m.Velocity.MulScalar(keep).Add(drift.MulScalar(1-keep))
}
