package components

import (
	"github.com/automoto/amoebash/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
}

// SetRange switches the animation to frames [first, last], restarting it
// only when the range actually changes.
func (a *AnimationData) SetRange(first, last int) {
	if a.CurrentAnimation == nil {
		a.CurrentAnimation = animations.NewAnimation(first, last, 1, 5)
		return
	}
	if a.CurrentAnimation.First == first && a.CurrentAnimation.Last == last {
		return
	}
	a.CurrentAnimation.First = first
	a.CurrentAnimation.Last = last
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
