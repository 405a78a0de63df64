package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/systems/collision"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// worldState is what the systems keep about one world outside the ECS: the
// wall geometry cache, the bot's navigation grid and log-once flags. The
// game loop runs on one goroutine, so it is not synchronised.
type worldState struct {
	world    donburi.World
	resolver *collision.Resolver
	navGrid  *NavGrid

	skipped        map[donburi.Entity]bool
	noPlayerLogged bool
}

// Note: This is safe in the single-threaded game loop. The state is
// replaced whenever the systems are run against a different world.
var current *worldState

func stateFor(w donburi.World) *worldState {
	if current == nil || current.world != w {
		current = &worldState{
			world:    w,
			resolver: collision.NewResolver(cfg.Collision.Margin),
			skipped:  make(map[donburi.Entity]bool),
		}
	}
	return current
}

// skipOnce logs the first time an entity is skipped for missing data.
func (s *worldState) skipOnce(e *donburi.Entry, reason string) {
	if s.skipped[e.Entity()] {
		return
	}
	s.skipped[e.Entity()] = true
	log.Warn("skipping entity", "entity", e.Entity(), "reason", reason)
}

// GetSession returns the run singleton, or nil before one is created.
func GetSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// deltaMs is the simulated length of the current tick.
func deltaMs(w donburi.World) float64 {
	if s := GetSession(w); s != nil && s.DeltaMs > 0 {
		return s.DeltaMs
	}
	return cfg.C.TickMs()
}
