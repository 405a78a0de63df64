package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PatrolData is the home area shared by species that wander around a
// fixed point.
type PatrolData struct {
	Origin math.Vec2
	Range  float64
}

type BasicState uint8

const (
	BasicPatrolling BasicState = iota
	BasicDashing
	BasicChasing
	BasicKnockback
)

func (s BasicState) String() string {
	return enumName(s, "Patrolling", "Dashing", "Chasing", "Knockback")
}

type BasicAIData struct {
	PatrolData
	State BasicState
	// Direction is +1 when patrolling right and -1 when patrolling left.
	Direction        float64
	TargetVelocityX  float64
	PrevX            float64
	ContactTimerMs   float64
	KnockbackTimerMs float64
}

type DrifterState uint8

const (
	DrifterFloating DrifterState = iota
	DrifterRunaway
)

func (s DrifterState) String() string {
	return enumName(s, "Floating", "Runaway")
}

type DrifterAIData struct {
	State   DrifterState
	TimerMs float64
}

type OrbiterState uint8

const (
	OrbiterPatrolling OrbiterState = iota
	OrbiterChasing
)

func (s OrbiterState) String() string {
	return enumName(s, "Patrolling", "Chasing")
}

type OrbiterAIData struct {
	PatrolData
	State OrbiterState
	// Index is the placement among live orbiters; it picks the ring slot
	// and desynchronises the idle drift.
	Index  int
	Target math.Vec2
	// SpeedFactor ramps from half to full speed after detection.
	SpeedFactor float64
	Ramp        *gween.Tween
}

type ChargerState uint8

const (
	ChargerHunt ChargerState = iota
	ChargerPierce
	ChargerShoot
)

func (s ChargerState) String() string {
	return enumName(s, "Hunt", "Pierce", "Shoot")
}

type ChargerAIData struct {
	State         ChargerState
	Charging      bool
	ChargeMs      float64
	PierceMs      float64
	ShootWindowMs float64
	CooldownMs    float64
	Heading       float64
	LastDirection math.Vec2
}

type BossState uint8

const (
	BossInitial BossState = iota
	BossIdle
	BossShootParade
	BossRumble
	BossFlee
)

func (s BossState) String() string {
	return enumName(s, "Initial", "Idle", "ShootParade", "Rumble", "Flee")
}

type BossAIData struct {
	State         BossState
	CooldownMs    float64
	SubCooldownMs float64
	DurationMs    float64
	Charging      bool
	ChargeMs      float64
	Heading       float64
	Arrow         donburi.Entity
}

type FinalBossState uint8

const (
	FinalBossInitial FinalBossState = iota
	FinalBossSpawn
	FinalBossSpiralShoot
	FinalBossTired
)

func (s FinalBossState) String() string {
	return enumName(s, "Initial", "Spawn", "SpiralShoot", "Tired")
}

type FinalBossAIData struct {
	State FinalBossState
	// Phase runs 1..3 and never decreases.
	Phase         int
	Spawned       bool
	CooldownMs    float64
	SubCooldownMs float64
	DurationMs    float64
	Arrow         donburi.Entity
}

var (
	BasicAI     = donburi.NewComponentType[BasicAIData]()
	DrifterAI   = donburi.NewComponentType[DrifterAIData]()
	OrbiterAI   = donburi.NewComponentType[OrbiterAIData]()
	ChargerAI   = donburi.NewComponentType[ChargerAIData]()
	BossAI      = donburi.NewComponentType[BossAIData]()
	FinalBossAI = donburi.NewComponentType[FinalBossAIData]()
)

func enumName[T ~uint8](v T, names ...string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown"
}
