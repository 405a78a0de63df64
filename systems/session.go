package systems

import (
	cfg "github.com/automoto/amoebash/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the run clock by one tick.
func UpdateSession(ecs *ecs.ECS) {
	s := GetSession(ecs.World)
	if s == nil {
		return
	}
	s.Tick++
	s.DeltaMs = cfg.C.TickMs()
	s.ElapsedMs += s.DeltaMs
}

// IsSessionOver reports whether the run has ended, won or lost.
func IsSessionOver(ecs *ecs.ECS) bool {
	s := GetSession(ecs.World)
	return s != nil && s.Over
}

// WithGameplayChecks wraps a system so it only runs while the game is
// neither paused nor over.
func WithGameplayChecks(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if IsPaused(e) || IsSessionOver(e) {
			return
		}
		system(e)
	}
}
