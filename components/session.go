package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionData is the per-run singleton: clock, random source and the
// counters persisted as a run record.
type SessionData struct {
	RNG       *rand.Rand
	Seed      int64
	Tick      int
	ElapsedMs float64
	DeltaMs   float64

	Kills          int
	FinalBossPhase int
	Over           bool
	Won            bool
}

var Session = donburi.NewComponentType[SessionData]()
