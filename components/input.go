package components

import (
	cfg "github.com/automoto/amoebash/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all
// actions. The keyboard system and the bot both write it.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Aim overrides the facing direction when non-zero; the bot uses it.
	AimX, AimY float64
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Advance copies the current state into the previous one and clears it,
// ready for the next tick's writes.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
