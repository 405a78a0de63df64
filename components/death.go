package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// TimerMs counts down each tick; when it reaches 0 the entity is removed.
type DeathData struct {
	TimerMs float64
}

var Death = donburi.NewComponentType[DeathData]()
