package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/gamemath"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/ai"
	"github.com/automoto/amoebash/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events, keeps health values within
// their valid range and starts the death sequence at zero health.
func UpdateCombat(ecs *ecs.ECS) {
	session := GetSession(ecs.World)

	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		hit = append(hit, e)
	}

	// --------------------------------------------------------------------
	// 1. Process queued damage events
	// --------------------------------------------------------------------
	for _, e := range hit {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if e.HasComponent(components.Death) || !e.HasComponent(components.Health) {
			continue
		}

		switch {
		case e.HasComponent(tags.Player):
			applyHitToPlayer(e, dmg)
		case e.HasComponent(tags.Enemy):
			killed := applyHitToEnemy(e, dmg)
			if killed && dmg.FromPlayer && session != nil {
				session.Kills++
			}
		}
	}

	// --------------------------------------------------------------------
	// 2. Clamp health ranges (0..Max)
	// --------------------------------------------------------------------
	var dying []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		hp.Current = max(0, min(hp.Current, hp.Max))

		if hp.Current == 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	}
	for _, e := range dying {
		startDeathSequence(e)
	}
}

func applyHitToPlayer(e *donburi.Entry, dmg components.DamageEventData) {
	player := components.Player.Get(e)
	if player.InvulnMs > 0 {
		return
	}
	components.Health.Get(e).Current -= dmg.Amount
	player.InvulnMs = cfg.Player.InvulnMs

	// A dash carries through hits.
	if !player.Dash.Active && (dmg.KnockbackX != 0 || dmg.KnockbackY != 0) {
		components.Motion.Get(e).Velocity = knockback(dmg)
	}
	TriggerDamageFlash(e)
}

// applyHitToEnemy reports whether the hit took the enemy's health to zero.
func applyHitToEnemy(e *donburi.Entry, dmg components.DamageEventData) bool {
	enemy := components.Enemy.Get(e)
	if enemy.InvulnMs > 0 {
		return false
	}
	hp := components.Health.Get(e)
	if hp.Current <= 0 {
		return false
	}
	hp.Current -= dmg.Amount
	enemy.InvulnMs = cfg.Enemy.InvulnMs

	setHealthBar(e)
	TriggerHitFlash(e)

	if hp.Current > 0 && e.HasComponent(components.BasicAI) && (dmg.KnockbackX != 0 || dmg.KnockbackY != 0) {
		ai.EnterKnockback(components.BasicAI.Get(e), components.Motion.Get(e), knockback(dmg))
	}
	return hp.Current <= 0
}

// knockback is the event's summed impulse, capped so hits landing on the
// same tick do not stack into a launch.
func knockback(dmg components.DamageEventData) geometry.Vec2 {
	return gamemath.ClampMagnitude(geometry.V(dmg.KnockbackX, dmg.KnockbackY), cfg.Combat.MaxKnockback)
}

func setHealthBar(e *donburi.Entry) {
	bar := components.HealthBarData{TimeToLiveMs: cfg.Combat.HealthBarMs}
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.SetValue(e, bar)
		return
	}
	donburi.Add(e, components.HealthBar, &bar)
}

func startDeathSequence(e *donburi.Entry) {
	// Remove visual effect components to prevent rendering artifacts
	if e.HasComponent(components.Flash) {
		e.RemoveComponent(components.Flash)
	}

	timer := cfg.Combat.EnemyDeathMs
	if e.HasComponent(tags.Player) {
		timer = cfg.Combat.PlayerDeathMs
	}
	donburi.Add(e, components.Death, &components.DeathData{TimerMs: timer})

	if e.HasComponent(components.Animation) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.FreezeOnComplete = true
		}
	}
	if e.HasComponent(components.Motion) {
		components.Motion.Get(e).Velocity = geometry.Vec2{}
	}

	if e.HasComponent(components.Enemy) {
		log.Debug("enemy dying", "species", components.Enemy.Get(e).Species, "entity", e.Entity())
	}
}
