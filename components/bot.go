package components

import (
	cfg "github.com/automoto/amoebash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BotData drives the player's Input from the autopilot instead of the
// keyboard. Decisions are held for ReactionDelay ticks.
type BotData struct {
	Difficulty    cfg.BotDifficulty
	DecisionTimer int

	Move     math.Vec2
	Aim      math.Vec2
	WantDash bool
	WantFire bool
}

var Bot = donburi.NewComponentType[BotData]()
