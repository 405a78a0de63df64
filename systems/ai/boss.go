package ai

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
)

// StepBoss drives the mid boss. After first sighting it alternates between
// an idle cooldown and a randomly picked action: a projectile parade, a
// charged rumble dash, or, once wounded enough, a flee.
func StepBoss(st *components.BossAIData, a Actor, det Detection, dtMs float64, w World) components.BossState {
	cfg := config.AI.Boss
	m := a.Motion
	speed := speedOf(components.SpeciesBoss)

	switch st.State {
	case components.BossInitial:
		stop(m)
		if det.Within {
			enterBossAction(st, m, pick(w.RNG(), []components.BossState{
				components.BossShootParade,
				components.BossRumble,
			}), cfg)
		}

	case components.BossIdle:
		stop(m)
		m.Angle = geometry.LerpAngle(m.Angle, 0, cfg.TurnRate)
		st.CooldownMs -= dtMs
		if st.CooldownMs <= 0 && det.Within {
			enterBossAction(st, m, pick(w.RNG(), BossOptions(a.Health.Ratio())), cfg)
		}

	case components.BossShootParade:
		stop(m)
		st.SubCooldownMs -= dtMs
		if st.SubCooldownMs <= 0 {
			fireRing(w, m.Position, sizeOf(components.SpeciesBoss), 0, cfg.ParadeStep,
				cfg.ProjectileSpeed, cfg.ProjectileDamage, components.SpeciesBoss)
			st.SubCooldownMs = cfg.ParadeIntervalMs
		}
		st.DurationMs -= dtMs
		if st.DurationMs <= 0 {
			enterBossIdle(st, cfg)
		}

	case components.BossRumble:
		if st.Charging {
			stop(m)
			m.Angle = geometry.AngleOf(det.Direction)
			st.ChargeMs -= dtMs
			if st.ChargeMs <= 0 {
				st.Charging = false
				st.Heading = m.Angle
				st.DurationMs = cfg.RumbleDurationMs
			}
			break
		}
		m.Angle = st.Heading
		m.Velocity = geometry.FromAngle(st.Heading).MulScalar(speed*cfg.RumbleMultiplier)
		st.DurationMs -= dtMs
		if st.DurationMs <= 0 {
			stop(m)
			enterBossIdle(st, cfg)
		}

	case components.BossFlee:
		runAway(m, det, speed*cfg.FleeMultiplier)
		st.DurationMs -= dtMs
		if st.DurationMs <= 0 {
			stop(m)
			enterBossIdle(st, cfg)
		}
	}

	animate(a, components.SpeciesBoss, st.State.String())
	return st.State
}

// BossOptions lists the actions the boss may pick from idle. Flee is only
// offered below the configured health ratio.
func BossOptions(healthRatio float64) []components.BossState {
	options := []components.BossState{components.BossShootParade, components.BossRumble}
	if healthRatio < config.AI.Boss.FleeThreshold {
		options = append(options, components.BossFlee)
	}
	return options
}

func enterBossIdle(st *components.BossAIData, cfg config.BossConfig) {
	st.State = components.BossIdle
	st.CooldownMs = cfg.IdleCooldownMs
}

func enterBossAction(st *components.BossAIData, m *components.MotionData, next components.BossState, cfg config.BossConfig) {
	st.State = next
	switch next {
	case components.BossShootParade:
		st.DurationMs = cfg.ParadeDurationMs
		st.SubCooldownMs = 0
	case components.BossRumble:
		st.Charging = true
		st.ChargeMs = cfg.RumbleChargeMs
	case components.BossFlee:
		st.DurationMs = cfg.FleeDurationMs
	}
	stop(m)
}

// fireRing spawns one projectile every step degrees starting at base.
func fireRing(w World, pos geometry.Vec2, size, base, step, speed float64, damage int, owner components.Species) {
	for a := 0.0; a < 360-geometry.Epsilon; a += step {
		dir := geometry.FromAngle(base + a)
		w.SpawnProjectile(projectileFrom(pos, size, dir, speed, damage, owner))
	}
}
