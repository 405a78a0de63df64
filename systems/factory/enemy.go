package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of the given species centred on (x, y) with
// its state machine in the species' entry state. Species without a
// configured type fall back to the basic enemy.
func CreateEnemy(ecs *ecs.ECS, species components.Species, x, y float64) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[species.String()]
	if !exists {
		species = components.SpeciesBasic
		enemyType = cfg.Enemy.Types[species.String()] // Fallback to default
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	pos := geometry.V(x, y)

	components.Motion.SetValue(enemy, components.MotionData{
		Position: pos,
		Scale:    geometry.V(enemyType.Width, enemyType.Height),
	})

	// Create collision object
	obj := resolv.NewObject(x-enemyType.Width/2, y-enemyType.Height/2, enemyType.Width, enemyType.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, enemyType.Width, enemyType.Height))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Species:             species,
		ContactDamage:       enemyType.ContactDamage,
		DetectionMultiplier: 1,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	addBrain(ecs, enemy, species, pos)
	return enemy
}

// CreateMinion spawns a basic enemy for the final boss. Minions skip
// patrolling and chase the player from wherever they appear.
func CreateMinion(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	minion := CreateEnemy(ecs, components.SpeciesBasic, pos.X, pos.Y)
	components.Enemy.Get(minion).Minion = true

	brain := components.BasicAI.Get(minion)
	brain.State = components.BasicChasing
	components.Animation.SetValue(minion, GenerateAnimation("basic", brain.State.String()))
	return minion
}

// addBrain attaches the species' AI component in its entry state.
func addBrain(ecs *ecs.ECS, enemy *donburi.Entry, species components.Species, pos math.Vec2) {
	var state string

	switch species {
	case components.SpeciesBasic:
		st := components.BasicAIData{
			PatrolData: components.PatrolData{Origin: pos, Range: cfg.AI.Basic.PatrolRange},
			State:      components.BasicPatrolling,
			Direction:  1,
			PrevX:      pos.X,
		}
		state = st.State.String()
		donburi.Add(enemy, components.BasicAI, &st)

	case components.SpeciesDrifter:
		st := components.DrifterAIData{State: components.DrifterFloating}
		state = st.State.String()
		donburi.Add(enemy, components.DrifterAI, &st)

	case components.SpeciesOrbiter:
		st := components.OrbiterAIData{
			PatrolData:  components.PatrolData{Origin: pos, Range: cfg.AI.Orbiter.RingRadius},
			State:       components.OrbiterPatrolling,
			Target:      pos,
			SpeedFactor: cfg.AI.Orbiter.StartingFactor,
		}
		state = st.State.String()
		donburi.Add(enemy, components.OrbiterAI, &st)

	case components.SpeciesCharger:
		st := components.ChargerAIData{State: components.ChargerHunt, LastDirection: geometry.Up}
		state = st.State.String()
		donburi.Add(enemy, components.ChargerAI, &st)

	case components.SpeciesBoss:
		enemy.AddComponent(tags.Boss)
		st := components.BossAIData{State: components.BossInitial}
		st.Arrow = CreateIndicator(ecs, enemy.Entity()).Entity()
		state = st.State.String()
		donburi.Add(enemy, components.BossAI, &st)

	case components.SpeciesFinalBoss:
		enemy.AddComponent(tags.Boss)
		st := components.FinalBossAIData{State: components.FinalBossInitial, Phase: 1}
		st.Arrow = CreateIndicator(ecs, enemy.Entity()).Entity()
		state = st.State.String()
		donburi.Add(enemy, components.FinalBossAI, &st)
	}

	components.Animation.SetValue(enemy, GenerateAnimation(species.String(), state))
}
