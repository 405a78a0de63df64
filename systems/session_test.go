package systems

import (
	"testing"

	cfg "github.com/automoto/amoebash/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdateSessionAdvancesClock(t *testing.T) {
	e := newTestECS(t)

	UpdateSession(e)
	UpdateSession(e)

	s := session(t, e)
	assert.Equal(t, 2, s.Tick)
	assert.InDelta(t, cfg.C.TickMs(), s.DeltaMs, 1e-9)
	assert.InDelta(t, 2*cfg.C.TickMs(), s.ElapsedMs, 1e-9)
}

func TestWithGameplayChecks(t *testing.T) {
	e := newTestECS(t)
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	assert.Equal(t, 1, calls)

	GetOrCreatePause(e).IsPaused = true
	system(e)
	assert.Equal(t, 1, calls, "paused")

	GetOrCreatePause(e).IsPaused = false
	session(t, e).Over = true
	system(e)
	assert.Equal(t, 1, calls, "run over")
}

func TestSystemStateFollowsWorld(t *testing.T) {
	a := newTestECS(t)
	b := newTestECS(t)

	sa := stateFor(a.World)
	assert.Same(t, sa, stateFor(a.World))
	assert.NotSame(t, sa, stateFor(b.World))
}
