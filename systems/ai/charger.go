package ai

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
)

// StepCharger drives the charge-and-shoot enemy: it winds up facing the
// player, pierces along the locked heading, then stands and shoots.
func StepCharger(st *components.ChargerAIData, a Actor, det Detection, dtMs float64, w World) components.ChargerState {
	cfg := config.AI.Charger
	m := a.Motion

	switch st.State {
	case components.ChargerHunt:
		stop(m)
		switch {
		case !st.Charging && det.Within:
			st.Charging = true
			st.ChargeMs = cfg.ChargeMs
			m.Angle = geometry.AngleOf(det.Direction)
		case st.Charging && !det.Within:
			st.Charging = false
		case st.Charging:
			m.Angle = geometry.AngleOf(det.Direction)
			st.LastDirection = det.Direction
			st.ChargeMs -= dtMs
			if st.ChargeMs <= 0 {
				st.Charging = false
				st.State = components.ChargerPierce
				st.Heading = m.Angle
				st.PierceMs = cfg.PierceMs
				m.Velocity = geometry.FromAngle(st.Heading).MulScalar(cfg.PierceSpeed)
			}
		}

	case components.ChargerPierce:
		m.Angle = st.Heading
		m.Velocity = geometry.FromAngle(st.Heading).MulScalar(cfg.PierceSpeed)
		st.PierceMs -= dtMs
		if st.PierceMs <= 0 {
			stop(m)
			st.State = components.ChargerShoot
			st.ShootWindowMs = cfg.ShootWindowMs
			st.CooldownMs = 0
		}

	case components.ChargerShoot:
		stop(m)
		if !det.Within {
			st.State = components.ChargerHunt
			break
		}
		st.LastDirection = det.Direction
		m.Angle = geometry.LerpAngle(m.Angle, 0, cfg.TurnRate)

		st.CooldownMs -= dtMs
		if st.CooldownMs <= 0 {
			w.SpawnProjectile(projectileFrom(m.Position, sizeOf(components.SpeciesCharger), st.LastDirection,
				cfg.ProjectileSpeed, cfg.ProjectileDamage, components.SpeciesCharger))
			st.CooldownMs = cfg.ShootCooldownMs
		}

		st.ShootWindowMs -= dtMs
		if st.ShootWindowMs <= 0 {
			st.State = components.ChargerHunt
		}
	}

	state := st.State.String()
	if st.Charging {
		state = "Charge"
	}
	animate(a, components.SpeciesCharger, state)
	return st.State
}
