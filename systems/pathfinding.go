package systems

import (
	"math"

	astar "github.com/beefsack/go-astar"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/amoebash/shared/leveldata"
)

// NavGrid is the walkable area of a level, one node per tile.
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode
}

// NavNode is a single tile. It implements astar.Pather.
type NavNode struct {
	X, Y     int
	Walkable bool
	Grid     *NavGrid
}

var navDirs = [...]struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps need both
// orthogonal cells free so a path never clips a wall corner.
func (n *NavNode) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(navDirs))
	for _, d := range navDirs {
		next := n.Grid.node(n.X+d.dx, n.Y+d.dy)
		if next == nil || !next.Walkable {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			a, b := n.Grid.node(n.X+d.dx, n.Y), n.Grid.node(n.X, n.Y+d.dy)
			if a == nil || b == nil || !a.Walkable || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

// PathNeighborCost is the step length in cells, so diagonals cost sqrt(2).
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the Euclidean distance in cells.
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (g *NavGrid) node(x, y int) *NavNode {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// CreateNavGrid builds a navigation grid from a level's tiles. Walls block;
// empty tiles and portals are walkable.
func CreateNavGrid(level *leveldata.Grid) *NavGrid {
	grid := &NavGrid{
		Width:    level.Cols,
		Height:   level.Rows,
		CellSize: level.TileSize,
		Nodes:    make([][]*NavNode, level.Rows),
	}
	for y := 0; y < level.Rows; y++ {
		grid.Nodes[y] = make([]*NavNode, level.Cols)
		for x := 0; x < level.Cols; x++ {
			grid.Nodes[y][x] = &NavNode{
				X:        x,
				Y:        y,
				Walkable: level.At(x, y) != leveldata.TileWall,
				Grid:     grid,
			}
		}
	}
	return grid
}

// FindPath returns the nodes from start to goal, both included, or nil when
// the goal is unreachable.
func (g *NavGrid) FindPath(start, goal dmath.Vec2) []*NavNode {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	sx, sy := g.worldToGrid(start)
	gx, gy := g.worldToGrid(goal)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	// A body can overlap a wall tile by a margin; path from the nearest free cell.
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// astar returns the path goal first.
	result := make([]*NavNode, len(path))
	for i, p := range path {
		result[len(path)-1-i] = p.(*NavNode)
	}
	return result
}

// NextWaypoint is the world position the walker at start should head for to
// follow the path to goal. It returns false when there is no path.
func (g *NavGrid) NextWaypoint(start, goal dmath.Vec2) (dmath.Vec2, bool) {
	path := g.FindPath(start, goal)
	switch len(path) {
	case 0:
		return dmath.Vec2{}, false
	case 1:
		return goal, true
	}
	x, y := g.GridToWorld(path[1].X, path[1].Y)
	return dmath.Vec2{X: x, Y: y}, true
}

func (g *NavGrid) worldToGrid(p dmath.Vec2) (int, int) {
	return clampInt(int(p.X/g.CellSize), 0, g.Width-1),
		clampInt(int(p.Y/g.CellSize), 0, g.Height-1)
}

// findNearestWalkable searches expanding squares around (x, y).
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to the world centre of the cell.
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
