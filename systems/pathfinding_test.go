package systems

import (
	"testing"

	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallColumn is a 5x3 level with a wall in column 2, open at the bottom
// row unless closed is set.
func wallColumn(closed bool) *leveldata.Grid {
	g := leveldata.NewGrid("column", 5, 3, 32)
	g.Set(2, 0, leveldata.TileWall)
	g.Set(2, 1, leveldata.TileWall)
	if closed {
		g.Set(2, 2, leveldata.TileWall)
	}
	g.Set(4, 2, leveldata.TilePortal)
	return g
}

func TestFindPathAroundWall(t *testing.T) {
	nav := CreateNavGrid(wallColumn(false))
	start, goal := geometry.V(16, 16), geometry.V(144, 16)

	path := nav.FindPath(start, goal)
	require.NotEmpty(t, path)

	assert.Equal(t, 0, path[0].X)
	assert.Equal(t, 0, path[0].Y)
	assert.Equal(t, 4, path[len(path)-1].X)
	assert.Equal(t, 0, path[len(path)-1].Y)

	throughGap := false
	for _, n := range path {
		assert.True(t, n.Walkable)
		if n.X == 2 {
			assert.Equal(t, 2, n.Y)
			throughGap = true
		}
	}
	assert.True(t, throughGap)
}

func TestFindPathNoCornerCutting(t *testing.T) {
	nav := CreateNavGrid(wallColumn(false))

	// From (1,1) to (3,2) the diagonal through (2,2) would clip the wall at (2,1).
	path := nav.FindPath(geometry.V(48, 48), geometry.V(112, 80))
	require.NotEmpty(t, path)
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		if dx != 0 && dy != 0 {
			assert.True(t, nav.Nodes[path[i-1].Y][path[i].X].Walkable)
			assert.True(t, nav.Nodes[path[i].Y][path[i-1].X].Walkable)
		}
	}
}

func TestFindPathBlocked(t *testing.T) {
	nav := CreateNavGrid(wallColumn(true))

	assert.Nil(t, nav.FindPath(geometry.V(16, 16), geometry.V(144, 16)))
	_, ok := nav.NextWaypoint(geometry.V(16, 16), geometry.V(144, 16))
	assert.False(t, ok)
}

func TestNextWaypoint(t *testing.T) {
	nav := CreateNavGrid(wallColumn(false))

	next, ok := nav.NextWaypoint(geometry.V(16, 16), geometry.V(144, 16))
	require.True(t, ok)
	path := nav.FindPath(geometry.V(16, 16), geometry.V(144, 16))
	x, y := nav.GridToWorld(path[1].X, path[1].Y)
	assert.Equal(t, geometry.V(x, y), next)

	// Same cell: head straight for the goal.
	next, ok = nav.NextWaypoint(geometry.V(10, 10), geometry.V(20, 20))
	require.True(t, ok)
	assert.Equal(t, geometry.V(20, 20), next)
}

func TestNavGridWalkability(t *testing.T) {
	nav := CreateNavGrid(wallColumn(false))

	assert.False(t, nav.Nodes[0][2].Walkable)
	assert.True(t, nav.Nodes[2][2].Walkable)
	assert.True(t, nav.Nodes[2][4].Walkable, "portals are walkable")
}
