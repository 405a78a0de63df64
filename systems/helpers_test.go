package systems

import (
	"testing"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns a world with a session and an empty collision space
// covering a 20x15 tile level without walls.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, 1)
	grid := leveldata.NewGrid("test", 20, 15, 32)
	factory.CreateLevel(e, grid)
	factory.CreateSpace(e, int(grid.Width()), int(grid.Height()), 16, 16)
	return e
}

func session(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	s := GetSession(e.World)
	if s == nil {
		t.Fatal("no session")
	}
	return s
}
