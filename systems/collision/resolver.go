package collision

import (
	"math"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/yohamta/donburi"
)

// EdgeKind classifies the wall edge a mover struck.
type EdgeKind uint8

const (
	EdgeNone EdgeKind = iota
	EdgeVertical
	EdgeHorizontal
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeVertical:
		return "vertical"
	case EdgeHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Result reports a resolved collision and the raw edge vector that was hit.
type Result struct {
	Collided bool
	Edge     geometry.Vec2
	Kind     EdgeKind
}

// Resolver pushes movers out of cached walls.
type Resolver struct {
	Cache *WallCache
	// Margin is the gap left between the mover and the wall edge.
	Margin float64
}

func NewResolver(margin float64) *Resolver {
	return &Resolver{Cache: NewWallCache(), Margin: margin}
}

// CheckAndResolve tests mover against a wall and, on overlap, moves it out
// along the axis of the edge struck by a ray cast from its centre along the
// movement direction. Geometry where no edge can be found reports no
// collision and leaves mover untouched.
func (r *Resolver) CheckAndResolve(mover *components.MotionData, movementAngle float64, wall donburi.Entity, wallMotion components.MotionData) Result {
	info := r.Cache.Info(wall, wallMotion)
	if !HasCollided(moverVertices(mover), info.Vertices) {
		return Result{}
	}

	dir := geometry.FromAngle(movementAngle)
	edge, ok := struckEdge(mover.Position, dir, info, boundingRadius(mover))
	if !ok {
		return Result{}
	}
	return r.resolve(mover, movementAngle, info, edge)
}

// ResolvePlayer is CheckAndResolve with a sharper ray origin. It probes the
// leading end of the player's facing axis, then its centre, then the
// trailing end, and casts from the first probe that is not already inside
// the wall. The leading end is the one on the movement side, so a player
// backing into a wall probes from its back. When every probe is inside the
// ray starts at the centre.
func (r *Resolver) ResolvePlayer(player *components.MotionData, movementAngle float64, wall donburi.Entity, wallMotion components.MotionData) Result {
	info := r.Cache.Info(wall, wallMotion)
	if !HasCollided(moverVertices(player), info.Vertices) {
		return Result{}
	}

	dir := geometry.FromAngle(movementAngle)
	radius := boundingRadius(player)

	facing := geometry.FromAngle(player.Angle)
	if facing.Dot(&dir) < 0 {
		facing = facing.MulScalar(-1)
	}
	half := facing.MulScalar(player.Scale.Y/2)
	probes := [3]geometry.Vec2{
		player.Position.Add(half),
		player.Position,
		player.Position.Sub(half),
	}

	origin := player.Position
	for _, p := range probes {
		if !geometry.PointInRectangle(p, info.Vertices) {
			origin = p
			break
		}
	}

	edge, ok := struckEdge(origin, dir, info, radius)
	if !ok {
		return Result{}
	}
	return r.resolve(player, movementAngle, info, edge)
}

func (r *Resolver) resolve(mover *components.MotionData, movementAngle float64, info WallInfo, edge geometry.Vec2) Result {
	minX, minY, maxX, maxY := geometry.Bounds(info.Vertices)
	extentX, extentY := geometry.HalfExtents(mover.Angle, mover.Scale)
	heading := geometry.FromAngle(movementAngle)

	switch {
	case geometry.IsVertical(edge):
		if heading.X > 0 {
			mover.Position.X = minX - extentX - r.Margin
		} else {
			mover.Position.X = maxX + extentX + r.Margin
		}
		return Result{Collided: true, Edge: edge, Kind: EdgeVertical}
	case geometry.IsHorizontal(edge):
		if heading.Y > 0 {
			mover.Position.Y = minY - extentY - r.Margin
		} else {
			mover.Position.Y = maxY + extentY + r.Margin
		}
		return Result{Collided: true, Edge: edge, Kind: EdgeHorizontal}
	}
	return Result{}
}

// struckEdge casts a ray from origin along dir and returns the wall edge
// with the nearest hit. Hits count when they land within the edge's span
// widened by the mover's radius, since the mover's corners reach further
// than its centre line.
func struckEdge(origin, dir geometry.Vec2, info WallInfo, radius float64) (geometry.Vec2, bool) {
	best := math.Inf(1)
	var hit geometry.Vec2
	found := false

	for i, start := range info.Vertices {
		edge := info.Edges[i]
		t := geometry.SegmentRayIntersectionDistance(origin, dir, start, edge)
		if t < 0 || t >= best {
			continue
		}
		p := origin.Add(dir.MulScalar(t))
		end := start.Add(edge)
		if geometry.IsVertical(edge) && !within(p.Y, start.Y, end.Y, radius) {
			continue
		}
		if geometry.IsHorizontal(edge) && !within(p.X, start.X, end.X, radius) {
			continue
		}
		best, hit, found = t, edge, true
	}
	return hit, found
}

func within(v, a, b, slack float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return v >= lo-slack && v <= hi+slack
}

func moverVertices(m *components.MotionData) [4]geometry.Vec2 {
	return geometry.RectangleVertices(m.Position, m.Angle, m.Scale)
}

func boundingRadius(m *components.MotionData) float64 {
	return m.Scale.Magnitude() / 2
}
