package factory

import (
	"math/rand"

	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the run singleton. Every random decision in the
// run draws from its seeded source.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.Set(session, &components.SessionData{
		RNG:  rand.New(rand.NewSource(seed)),
		Seed: seed,
	})
	return session
}

func CreatePause(ecs *ecs.ECS) *donburi.Entry {
	pause := archetypes.Pause.Spawn(ecs)
	components.Pause.Set(pause, &components.PauseData{})
	return pause
}
