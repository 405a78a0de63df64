package systems

import (
	"testing"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/systems/ai"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/automoto/amoebash/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestArenaWorldStagesUntilFlush(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 300, 300)

	w := newArenaWorld(e)
	w.SpawnMinion(geometry.V(100, 100))
	w.SpawnMinion(geometry.V(140, 100))
	w.SpawnProjectile(ai.ProjectileRequest{Position: geometry.V(50, 50), Velocity: geometry.V(0, 100), Damage: 3, Owner: components.SpeciesBoss})
	w.DamagePlayer(4)
	w.DamagePlayer(6)

	assert.Equal(t, 0, CountMinions(e.World))
	assert.Equal(t, 2, w.MinionCount())
	assert.False(t, player.HasComponent(components.DamageEvent))

	w.flush(e, player)

	assert.Equal(t, 2, CountMinions(e.World))
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(tags.Projectile)).Count(e.World))
	require.True(t, player.HasComponent(components.DamageEvent))
	assert.Equal(t, 10, components.DamageEvent.Get(player).Amount)
}

func TestArenaWorldMinionLimit(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 300, 300)
	cfg.Enemy.MinionLimit = 2

	w := newArenaWorld(e)
	for i := 0; i < 5; i++ {
		w.SpawnMinion(geometry.V(float64(100+i*40), 100))
	}
	w.flush(e, player)
	assert.Equal(t, 2, CountMinions(e.World))

	// The limit counts minions already alive.
	w = newArenaWorld(e)
	w.SpawnMinion(geometry.V(100, 200))
	w.flush(e, player)
	assert.Equal(t, 2, CountMinions(e.World))
}

func TestMinionsStartChasing(t *testing.T) {
	e := newTestECS(t)
	minion := factory.CreateMinion(e, geometry.V(64, 64))

	assert.True(t, components.Enemy.Get(minion).Minion)
	assert.Equal(t, components.BasicChasing, components.BasicAI.Get(minion).State)
}

func TestUpdateEnemiesWithoutPlayer(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, components.SpeciesBasic, 100, 100)
	before := *components.Motion.Get(enemy)

	assert.NotPanics(t, func() { UpdateEnemies(e) })
	assert.Equal(t, before, *components.Motion.Get(enemy))
}

func TestUpdateEnemiesTracksFinalBossPhase(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, 600, 400)
	factory.CreateEnemy(e, components.SpeciesFinalBoss, 100, 100)

	UpdateSession(e)
	UpdateEnemies(e)

	assert.Equal(t, 1, session(t, e).FinalBossPhase)
}

func TestUpdateEnemiesSkipsDying(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, 120, 100)
	enemy := factory.CreateEnemy(e, components.SpeciesBasic, 100, 100)
	dying := factory.CreateEnemy(e, components.SpeciesBasic, 400, 100)
	components.Enemy.Get(enemy).InvulnMs = 100
	components.Enemy.Get(dying).InvulnMs = 100
	startDeathSequence(dying)

	UpdateSession(e)
	UpdateEnemies(e)

	assert.Less(t, components.Enemy.Get(enemy).InvulnMs, 100.0)
	assert.Equal(t, 100.0, components.Enemy.Get(dying).InvulnMs)
}

func TestOrbiterSlotsSpreadAroundPlayer(t *testing.T) {
	e := newTestECS(t)
	playerPos := geometry.V(320, 240)
	a := factory.CreateEnemy(e, components.SpeciesOrbiter, 100, 100)
	b := factory.CreateEnemy(e, components.SpeciesOrbiter, 500, 100)

	assignOrbiterSlots(e.World, playerPos)

	sa, sb := components.OrbiterAI.Get(a), components.OrbiterAI.Get(b)
	assert.ElementsMatch(t, []int{0, 1}, []int{sa.Index, sb.Index})
	for _, st := range []*components.OrbiterAIData{sa, sb} {
		assert.InDelta(t, cfg.AI.Orbiter.RingRadius, st.Target.Sub(playerPos).Magnitude(), 1e-6)
	}
	// Two slots sit opposite each other.
	assert.InDelta(t, 2*cfg.AI.Orbiter.RingRadius, sa.Target.Sub(sb.Target).Magnitude(), 1e-6)
}
