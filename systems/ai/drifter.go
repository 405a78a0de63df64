package ai

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
)

// StepDrifter drives the floating enemy. It drifts on a random heading that
// changes every interval and flees the player at full speed while detected.
func StepDrifter(st *components.DrifterAIData, a Actor, det Detection, dtMs float64, w World) components.DrifterState {
	cfg := config.AI.Drifter
	m := a.Motion
	speed := speedOf(components.SpeciesDrifter)

	switch st.State {
	case components.DrifterFloating:
		if det.Within {
			st.State = components.DrifterRunaway
			runAway(m, det, speed)
			break
		}
		st.TimerMs += dtMs
		if st.TimerMs >= cfg.IntervalMs {
			st.TimerMs = 0
			m.Angle = w.RNG().Float64() * 360
			m.Velocity = geometry.FromAngle(m.Angle).MulScalar(speed*cfg.FloatFactor)
		}

	case components.DrifterRunaway:
		if !det.Within {
			st.State = components.DrifterFloating
			// Half elapsed, so the next heading change is not immediate.
			st.TimerMs = cfg.IntervalMs / 2
			break
		}
		runAway(m, det, speed)
	}

	animate(a, components.SpeciesDrifter, st.State.String())
	return st.State
}

func runAway(m *components.MotionData, det Detection, speed float64) {
	away := det.Direction.MulScalar(-1)
	m.Angle = geometry.AngleOf(away)
	m.Velocity = away.MulScalar(speed)
}
