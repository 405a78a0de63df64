package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates an axis-aligned wall covering the box at (x, y) with
// size w x h. Walls never move after creation, so the collision resolver
// may cache their geometry.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createStatic(ecs, archetypes.Wall, x, y, w, h, tags.ResolvSolid)
}

// CreatePortal creates the level exit. It does not block movement.
func CreatePortal(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createStatic(ecs, archetypes.Portal, x, y, w, h, tags.ResolvPortal)
}

type spawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

func createStatic(ecs *ecs.ECS, a spawner, x, y, w, h float64, tag string) *donburi.Entry {
	entry := a.Spawn(ecs)

	components.Motion.SetValue(entry, components.MotionData{
		Position: geometry.V(x+w/2, y+h/2),
		Scale:    geometry.V(w, h),
	})

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry
}
