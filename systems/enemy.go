package systems

import (
	"errors"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/automoto/amoebash/systems/ai"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/automoto/amoebash/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ErrNoPlayer is logged when the enemy pass runs without a player to chase.
var ErrNoPlayer = errors.New("no player in world")

// UpdateEnemies runs every live enemy's state machine for one tick. Spawns
// and player damage the machines ask for are staged and applied once the
// pass is done.
func UpdateEnemies(ecs *ecs.ECS) {
	st := stateFor(ecs.World)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		if !st.noPlayerLogged {
			log.Warn("enemy pass skipped", "err", ErrNoPlayer)
			st.noPlayerLogged = true
		}
		return
	}
	st.noPlayerLogged = false

	playerPos := components.Motion.Get(playerEntry).Position
	playerRange := components.Player.Get(playerEntry).DetectionRange
	dt := deltaMs(ecs.World)

	world := newArenaWorld(ecs)
	assignOrbiterSlots(ecs.World, playerPos)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		if !e.HasComponent(components.Enemy) || !e.HasComponent(components.Motion) || !e.HasComponent(components.Health) {
			st.skipOnce(e, "missing enemy, motion or health")
			return
		}

		enemy := components.Enemy.Get(e)
		if enemy.InvulnMs > 0 {
			enemy.InvulnMs = max(0, enemy.InvulnMs-dt)
		}

		a := ai.Actor{
			Motion: components.Motion.Get(e),
			Health: components.Health.Get(e),
		}
		if e.HasComponent(components.Animation) {
			a.Animation = components.Animation.Get(e)
		}

		radius := cfg.Enemy.Types[enemy.Species.String()].DetectionRadius
		det := ai.Detect(playerPos, a.Motion.Position, enemy.DetectionMultiplier, radius, playerRange)

		if !stepBrain(e, a, det, dt, world) {
			st.skipOnce(e, "no AI component")
			return
		}

		if a.Animation != nil && a.Animation.CurrentAnimation != nil {
			a.Animation.CurrentAnimation.Update()
		}
	})

	world.flush(ecs, playerEntry)

	if s := GetSession(ecs.World); s != nil {
		components.FinalBossAI.Each(ecs.World, func(e *donburi.Entry) {
			s.FinalBossPhase = max(s.FinalBossPhase, components.FinalBossAI.Get(e).Phase)
		})
	}
}

// stepBrain dispatches on whichever AI component the enemy carries. It
// returns false when there is none.
func stepBrain(e *donburi.Entry, a ai.Actor, det ai.Detection, dt float64, w ai.World) bool {
	switch {
	case e.HasComponent(components.BasicAI):
		st := components.BasicAI.Get(e)
		st.State = ai.StepBasic(st, a, det, dt, w)
	case e.HasComponent(components.DrifterAI):
		st := components.DrifterAI.Get(e)
		st.State = ai.StepDrifter(st, a, det, dt, w)
	case e.HasComponent(components.OrbiterAI):
		st := components.OrbiterAI.Get(e)
		st.State = ai.StepOrbiter(st, a, det, dt, w)
	case e.HasComponent(components.ChargerAI):
		st := components.ChargerAI.Get(e)
		st.State = ai.StepCharger(st, a, det, dt, w)
	case e.HasComponent(components.BossAI):
		st := components.BossAI.Get(e)
		st.State = ai.StepBoss(st, a, det, dt, w)
	case e.HasComponent(components.FinalBossAI):
		st := components.FinalBossAI.Get(e)
		st.State = ai.StepFinalBoss(st, a, det, dt, w)
	default:
		return false
	}
	return true
}

// assignOrbiterSlots spreads the live orbiters evenly around the player.
// Iteration order is stable between ticks so slots do not shuffle.
func assignOrbiterSlots(w donburi.World, playerPos math.Vec2) {
	var orbiters []*donburi.Entry
	components.OrbiterAI.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			orbiters = append(orbiters, e)
		}
	})
	for i, e := range orbiters {
		st := components.OrbiterAI.Get(e)
		st.Index = i
		st.Target = ai.RingTarget(playerPos, i, len(orbiters), cfg.AI.Orbiter.RingRadius)
	}
}

// CountMinions returns the live enemies spawned by the final boss.
func CountMinions(w donburi.World) int {
	n := 0
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Minion && !e.HasComponent(components.Death) {
			n++
		}
	})
	return n
}

// arenaWorld adapts the ECS to ai.World, staging every request until flush.
type arenaWorld struct {
	rng     ai.RNG
	nowMs   float64
	grid    *leveldata.Grid
	minions int

	projectiles []ai.ProjectileRequest
	spawns      []math.Vec2
	damage      int
}

func newArenaWorld(ecs *ecs.ECS) *arenaWorld {
	w := &arenaWorld{minions: CountMinions(ecs.World)}
	if s := GetSession(ecs.World); s != nil {
		w.rng = s.RNG
		w.nowMs = s.ElapsedMs
	}
	if w.rng == nil {
		w.rng = fallbackRNG
	}
	if entry, ok := components.Level.First(ecs.World); ok {
		w.grid = components.Level.Get(entry).Grid
	}
	return w
}

func (w *arenaWorld) RNG() ai.RNG { return w.rng }

func (w *arenaWorld) NowMs() float64 { return w.nowMs }

func (w *arenaWorld) Grid() *leveldata.Grid { return w.grid }

func (w *arenaWorld) MinionCount() int { return w.minions }

func (w *arenaWorld) DamagePlayer(amount int) { w.damage += amount }

func (w *arenaWorld) SpawnProjectile(req ai.ProjectileRequest) {
	w.projectiles = append(w.projectiles, req)
}

// SpawnMinion stages a minion unless the live count would exceed the
// configured limit.
func (w *arenaWorld) SpawnMinion(pos math.Vec2) {
	if cfg.Enemy.MinionLimit > 0 && w.minions >= cfg.Enemy.MinionLimit {
		return
	}
	w.minions++
	w.spawns = append(w.spawns, pos)
}

func (w *arenaWorld) flush(ecs *ecs.ECS, player *donburi.Entry) {
	for _, req := range w.projectiles {
		factory.CreateProjectile(ecs, req)
	}
	for _, pos := range w.spawns {
		factory.CreateMinion(ecs, pos)
	}
	if len(w.spawns) > 0 {
		log.Debug("minions spawned", "count", len(w.spawns), "alive", w.minions)
	}
	if w.damage > 0 {
		queueDamage(player, components.DamageEventData{Amount: w.damage})
	}
}

// queueDamage adds to the entity's pending damage event, creating it if
// needed. Combat applies and clears it.
func queueDamage(e *donburi.Entry, ev components.DamageEventData) {
	if !e.HasComponent(components.DamageEvent) {
		donburi.Add(e, components.DamageEvent, &ev)
		return
	}
	pending := components.DamageEvent.Get(e)
	pending.Amount += ev.Amount
	pending.KnockbackX += ev.KnockbackX
	pending.KnockbackY += ev.KnockbackY
	pending.FromPlayer = pending.FromPlayer || ev.FromPlayer
}
