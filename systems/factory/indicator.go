package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateIndicator creates the off-screen arrow for a boss. The arrow
// pulses using a *gween.Sequence of tweens, growing and shrinking.
func CreateIndicator(ecs *ecs.ECS, target donburi.Entity) *donburi.Entry {
	arrow := archetypes.Indicator.Spawn(ecs)

	c := cfg.Indicator
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(c.PulseMin, c.PulseMax, c.PulseMs, ease.InOutSine),
		gween.New(c.PulseMax, c.PulseMin, c.PulseMs, ease.InOutSine),
	)

	components.Indicator.SetValue(arrow, components.IndicatorData{
		Target: target,
		Pulse:  pulse,
		Scale:  float64(c.PulseMin),
	})

	return arrow
}
