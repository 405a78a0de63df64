// Package animations steps frame ranges. It only tracks which frame is
// current; drawing is up to the caller.
package animations

// Animation cycles through frames First..Last, advancing Step frames every
// FrameTicks updates.
type Animation struct {
	First      int
	Last       int
	Step       int
	FrameTicks float32
	// FreezeOnComplete holds the last frame instead of wrapping to First.
	FreezeOnComplete bool
	// Looped is set once the range has been played through.
	Looped bool

	ticks float32
	frame int
}

func NewAnimation(first, last, step int, frameTicks float32) *Animation {
	if step <= 0 {
		step = 1
	}
	if last < first {
		last = first
	}
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		FrameTicks: frameTicks,
		frame:      first,
	}
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	a.ticks++
	if a.ticks < a.FrameTicks {
		return
	}
	a.ticks = 0

	if next := a.frame + a.Step; next <= a.Last {
		a.frame = next
		return
	}
	a.Looped = true
	if !a.FreezeOnComplete {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is the position of the current frame within the range, from 0
// on First to 1 on Last.
func (a *Animation) Progress() float64 {
	if a.Last <= a.First {
		return 0
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.Looped = false
}
