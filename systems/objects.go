package systems

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects fits every mover's broad-phase body to its motion. Walls
// and portals never move and are left alone.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Wall) || e.HasComponent(tags.Portal) || !e.HasComponent(components.Motion) {
			return
		}
		components.Object.Get(e).Fit(components.Motion.Get(e))
	})
}
