package systems

import (
	"github.com/automoto/amoebash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocity into position for everything that
// moves. Entities in their death sequence freeze in place.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := deltaMs(ecs.World)

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		m := components.Motion.Get(e)
		if m.Velocity.X == 0 && m.Velocity.Y == 0 {
			return
		}
		m.Position = m.Position.Add(m.Velocity.MulScalar(dt/1000))
	})
}
