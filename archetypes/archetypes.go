package archetypes

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Input,
		components.Motion,
		components.Object,
		components.Health,
		components.Animation,
	)
	// Enemy carries everything but the species AI component, which the
	// factory adds per species.
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Motion,
		components.Object,
		components.Health,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Motion,
		components.Object,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Motion,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Motion,
		components.Object,
	)
	Indicator = newArchetype(
		tags.Indicator,
		components.Indicator,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
