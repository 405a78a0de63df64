package systems

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death sequences. Expired enemies are removed
// with their broad-phase body and boss arrow; an expired player ends the
// run.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaMs(ecs.World)
	var toRemove []*donburi.Entry

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.TimerMs -= dt
		if death.TimerMs > 0 {
			return
		}

		if e.HasComponent(tags.Player) {
			handlePlayerDeath(ecs)
			return
		}
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		if arrow, ok := arrowOf(e); ok && ecs.World.Valid(arrow) {
			destroyEntity(ecs, ecs.World.Entry(arrow))
		}
		destroyEntity(ecs, e)
	}
}

func handlePlayerDeath(ecs *ecs.ECS) {
	session := GetSession(ecs.World)
	if session == nil || session.Over {
		return
	}
	session.Over = true
	session.Won = false
	log.Info("player died", "tick", session.Tick, "kills", session.Kills, "final_boss_phase", session.FinalBossPhase)
}

// arrowOf returns the off-screen indicator owned by a boss.
func arrowOf(e *donburi.Entry) (donburi.Entity, bool) {
	switch {
	case e.HasComponent(components.BossAI):
		return components.BossAI.Get(e).Arrow, true
	case e.HasComponent(components.FinalBossAI):
		return components.FinalBossAI.Get(e).Arrow, true
	}
	return donburi.Null, false
}

// destroyEntity removes e from the world and its body from the space.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
