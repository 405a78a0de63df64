package systems

import (
	"testing"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestDeathRemovesEnemyAndBody(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesDrifter, 100, 100)
	obj := components.Object.Get(enemy).Object
	entity := enemy.Entity()
	donburi.Add(enemy, components.Death, &components.DeathData{TimerMs: 20})

	UpdateDeaths(e)
	require.True(t, e.World.Valid(entity), "timer still running")

	UpdateDeaths(e)
	assert.False(t, e.World.Valid(entity))
	assert.Nil(t, obj.Space)
}

func TestDeathRemovesBossArrow(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateEnemy(e, components.SpeciesBoss, 100, 100)
	arrow := components.BossAI.Get(boss).Arrow
	require.True(t, e.World.Valid(arrow))

	donburi.Add(boss, components.Death, &components.DeathData{})
	UpdateDeaths(e)

	assert.False(t, e.World.Valid(boss.Entity()))
	assert.False(t, e.World.Valid(arrow))
}

func TestPlayerDeathEndsRun(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	donburi.Add(player, components.Death, &components.DeathData{})

	UpdateDeaths(e)

	s := session(t, e)
	assert.True(t, s.Over)
	assert.False(t, s.Won)
	assert.True(t, player.Valid(), "the player stays for the game over screen")
	assert.True(t, IsSessionOver(e))
}
