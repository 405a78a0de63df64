package collision

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/yohamta/donburi"
)

// WallInfo is the precomputed polygon of a static wall.
type WallInfo struct {
	Vertices [4]geometry.Vec2
	Edges    [4]geometry.Vec2
}

// WallCache memoises wall polygons by entity id. Walls never move, so an
// entry stays valid until the wall is forgotten.
type WallCache struct {
	walls map[donburi.Entity]WallInfo
}

func NewWallCache() *WallCache {
	return &WallCache{walls: make(map[donburi.Entity]WallInfo)}
}

// Info returns the polygon for the wall, computing it from m on first use.
// Later calls ignore m.
func (c *WallCache) Info(id donburi.Entity, m components.MotionData) WallInfo {
	if info, ok := c.walls[id]; ok {
		return info
	}
	v := geometry.RectangleVertices(m.Position, m.Angle, m.Scale)
	info := WallInfo{Vertices: v, Edges: geometry.EdgesOf(v)}
	c.walls[id] = info
	return info
}

// Forget drops a wall, for level teardown.
func (c *WallCache) Forget(id donburi.Entity) {
	delete(c.walls, id)
}

func (c *WallCache) Len() int {
	return len(c.walls)
}
