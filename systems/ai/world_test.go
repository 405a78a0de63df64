package ai

import (
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/shared/leveldata"
)

// scriptedRNG replays values in order, wrapping around.
type scriptedRNG struct {
	values []float64
	i      int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

type fakeWorld struct {
	rng         *scriptedRNG
	now         float64
	projectiles []ProjectileRequest
	minions     []geometry.Vec2
	damage      int
	minionCount int
	grid        *leveldata.Grid
}

func newFakeWorld(values ...float64) *fakeWorld {
	return &fakeWorld{rng: &scriptedRNG{values: values}}
}

func (w *fakeWorld) RNG() RNG { return w.rng }
func (w *fakeWorld) NowMs() float64 { return w.now }
func (w *fakeWorld) SpawnProjectile(r ProjectileRequest) { w.projectiles = append(w.projectiles, r) }
func (w *fakeWorld) SpawnMinion(pos geometry.Vec2) { w.minions = append(w.minions, pos) }
func (w *fakeWorld) DamagePlayer(amount int) { w.damage += amount }
func (w *fakeWorld) MinionCount() int { return w.minionCount }
func (w *fakeWorld) Grid() *leveldata.Grid { return w.grid }

func newActor(x, y float64, health int) Actor {
	return Actor{
		Motion: &components.MotionData{
			Position: geometry.V(x, y),
			Scale:    geometry.V(20, 20),
		},
		Health:    &components.HealthData{Current: health, Max: health},
		Animation: &components.AnimationData{},
	}
}

func seen(dir geometry.Vec2, distance float64) Detection {
	return Detection{Distance: distance, Direction: dir.Normalized(), Within: true}
}

func unseen() Detection {
	return Detection{Distance: 1000, Direction: geometry.Up}
}

// borderedGrid is an empty room with a one cell wall ring.
func borderedGrid(cols, rows int) *leveldata.Grid {
	g := leveldata.NewGrid("test", cols, rows, 32)
	for c := 0; c < cols; c++ {
		g.Set(c, 0, leveldata.TileWall)
		g.Set(c, rows-1, leveldata.TileWall)
	}
	for r := 0; r < rows; r++ {
		g.Set(0, r, leveldata.TileWall)
		g.Set(cols-1, r, leveldata.TileWall)
	}
	return g
}
