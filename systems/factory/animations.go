package factory

import (
	"github.com/automoto/amoebash/assets/animations"
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
)

// GenerateAnimation creates an AnimationData component playing the frame
// range configured for key ("player", "basic", ...) in the given state. An
// unknown pair yields a single-frame animation.
func GenerateAnimation(key, state string) components.AnimationData {
	def, ok := cfg.AnimationFor(key, state)
	if !ok {
		return components.AnimationData{CurrentAnimation: animations.NewAnimation(0, 0, 1, 5)}
	}
	step := def.Step
	if step <= 0 {
		step = 1
	}
	return components.AnimationData{
		CurrentAnimation: animations.NewAnimation(def.First, def.Last, step, def.Speed),
	}
}
