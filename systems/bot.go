package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/geometry"
	"github.com/automoto/amoebash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Random source for worlds without a session.
// Uses fixed seed for deterministic replay support.
var fallbackRNG = rand.New(rand.NewSource(42))

// Line of sight sampling along the segment between bot and target.
const (
	losStepSize  = 8.0
	losCheckSize = 2.0
)

// UpdateBots writes the autopilot's decisions into bot-driven players'
// Input. Must run BEFORE UpdatePlayer in the system order.
func UpdateBots(e *ecs.ECS) {
	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space = components.Space.Get(spaceEntry)
	}
	navGrid := getOrCreateNavGrid(e)

	targets := collectTargets(e.World)
	portal, hasPortal := findPortal(e.World)
	bossAlive := false
	components.FinalBossAI.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Death) {
			bossAlive = true
		}
	})

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Input) || entry.HasComponent(components.Death) {
			return
		}
		bot := components.Bot.Get(entry)
		input := components.Input.Get(entry)
		input.Advance()

		if bot.DecisionTimer > 0 {
			bot.DecisionTimer--
		} else {
			me := components.Motion.Get(entry).Position
			health := components.Health.Get(entry)
			goal := botGoal{targets: targets}
			if hasPortal && !bossAlive {
				goal.portal = &portal
			}
			decideBot(bot, me, health.Ratio(), goal, space, navGrid)
			bot.DecisionTimer = cfg.Bot.Difficulties[bot.Difficulty].ReactionDelay
		}

		applyBotInput(bot, input)
	})
}

type botGoal struct {
	targets []dmath.Vec2
	portal  *dmath.Vec2
}

// decideBot picks the next held move, aim and actions. It keeps its
// distance from the nearest enemy, shoots when it has a clear line, dashes
// away from anything too close and heads for the portal once the final
// boss is gone.
func decideBot(bot *components.BotData, me dmath.Vec2, healthRatio float64, goal botGoal, space *resolv.Space, navGrid *NavGrid) {
	tuning := cfg.Bot.Difficulties[bot.Difficulty]
	bot.Move = dmath.Vec2{}
	bot.WantFire = false
	bot.WantDash = false

	target, ok := nearest(me, goal.targets)
	if !ok {
		if goal.portal != nil {
			bot.Move = steerTowards(me, *goal.portal, navGrid)
		}
		return
	}

	delta := target.Sub(me)
	dist := delta.Magnitude()
	dir := delta.Normalized()
	bot.Aim = dir
	los := hasLineOfSight(space, me.X, me.Y, target.X, target.Y)

	switch {
	case healthRatio < tuning.RetreatThreshold:
		bot.Move = dir.MulScalar(-1)
	case dist > tuning.FireRange || !los:
		bot.Move = steerTowards(me, target, navGrid)
	case dist < tuning.KiteDistance:
		bot.Move = dir.MulScalar(-1)
	default:
		// Circle the target at kiting distance.
		bot.Move = geometry.Perp(dir)
	}

	if dist < tuning.DashDistance {
		bot.Move = dir.MulScalar(-1)
		bot.WantDash = true
	}
	bot.WantFire = los && dist <= tuning.FireRange
}

// applyBotInput presses the actions for the held decision. Dash is a
// single press per decision.
func applyBotInput(bot *components.BotData, input *components.InputData) {
	const threshold = 0.3
	input.Current[cfg.ActionMoveLeft] = bot.Move.X < -threshold
	input.Current[cfg.ActionMoveRight] = bot.Move.X > threshold
	input.Current[cfg.ActionMoveUp] = bot.Move.Y < -threshold
	input.Current[cfg.ActionMoveDown] = bot.Move.Y > threshold
	input.Current[cfg.ActionFire] = bot.WantFire
	input.AimX, input.AimY = bot.Aim.X, bot.Aim.Y

	if bot.WantDash {
		input.Current[cfg.ActionDash] = true
		bot.WantDash = false
	}
}

// steerTowards follows the nav grid towards goal, falling back to a
// straight line when there is no grid or no path.
func steerTowards(me, goal dmath.Vec2, navGrid *NavGrid) dmath.Vec2 {
	if navGrid != nil {
		if next, ok := navGrid.NextWaypoint(me, goal); ok {
			if d := next.Sub(me); d.Magnitude() > geometry.Epsilon {
				return d.Normalized()
			}
		}
	}
	return goal.Sub(me).Normalized()
}

func collectTargets(w donburi.World) []dmath.Vec2 {
	var out []dmath.Vec2
	tags.Enemy.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) || !entry.HasComponent(components.Motion) {
			return
		}
		out = append(out, components.Motion.Get(entry).Position)
	})
	return out
}

func findPortal(w donburi.World) (dmath.Vec2, bool) {
	entry, ok := tags.Portal.First(w)
	if !ok {
		return dmath.Vec2{}, false
	}
	return components.Motion.Get(entry).Position, true
}

func nearest(from dmath.Vec2, points []dmath.Vec2) (dmath.Vec2, bool) {
	best := math.MaxFloat64
	var out dmath.Vec2
	for _, p := range points {
		if d := distance(from.X, from.Y, p.X, p.Y); d < best {
			best = d
			out = p
		}
	}
	return out, best < math.MaxFloat64
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// hasLineOfSight samples the segment between two points against walls.
func hasLineOfSight(space *resolv.Space, x1, y1, x2, y2 float64) bool {
	if space == nil {
		return true // Assume clear if no space available
	}

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist == 0 {
		return true
	}

	dx /= dist
	dy /= dist

	for d := losStepSize; d < dist-losStepSize; d += losStepSize {
		checkX := x1 + dx*d
		checkY := y1 + dy*d

		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvSolid) {
				continue
			}

			if checkX+losCheckSize > obj.X && checkX-losCheckSize < obj.X+obj.W &&
				checkY+losCheckSize > obj.Y && checkY-losCheckSize < obj.Y+obj.H {
				return false // Blocked
			}
		}
	}

	return true
}

// getOrCreateNavGrid builds the nav grid once per world from the level.
func getOrCreateNavGrid(e *ecs.ECS) *NavGrid {
	st := stateFor(e.World)
	if st.navGrid != nil {
		return st.navGrid
	}
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	grid := components.Level.Get(entry).Grid
	if grid == nil {
		return nil
	}
	st.navGrid = CreateNavGrid(grid)
	return st.navGrid
}
