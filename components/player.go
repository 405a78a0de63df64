package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DashState is the player's in-flight dash. Heading is in degrees and is
// redirected along walls on impact.
type DashState struct {
	Active     bool
	Heading    float64
	TimerMs    float64
	CooldownMs float64
}

type PlayerData struct {
	// DetectionRange multiplies every enemy's detection radius. Buffs
	// shrink it below 1.
	DetectionRange    float64
	Dash              DashState
	Facing            math.Vec2
	FireCooldownMs    float64
	InvulnMs          float64
	ContactCooldownMs float64
	Spawn             math.Vec2
}

var Player = donburi.NewComponentType[PlayerData]()
