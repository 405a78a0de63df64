package collision

import (
	"github.com/automoto/amoebash/shared/geometry"
)

// RedirectDash turns a dash that struck a wall into a slide along it. The
// velocity component into the wall is dropped and the heading snaps to the
// cardinal direction along the edge on the side the dash was already
// travelling: 0 or 180 for vertical edges, 90 or 270 for horizontal ones.
func RedirectDash(heading float64, vel geometry.Vec2, kind EdgeKind) (float64, geometry.Vec2) {
	dir := geometry.FromAngle(heading)
	switch kind {
	case EdgeVertical:
		vel.X = 0
		if dir.Y <= 0 {
			return 0, vel
		}
		return 180, vel
	case EdgeHorizontal:
		vel.Y = 0
		if dir.X >= 0 {
			return 90, vel
		}
		return 270, vel
	}
	return heading, vel
}
