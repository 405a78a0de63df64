package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ages hit flashes and enemy health bars.
func UpdateEffects(ecs *ecs.ECS) {
	dt := deltaMs(ecs.World)
	updateFlashEffects(ecs, dt)
	updateHealthBars(ecs, dt)
}

// updateFlashEffects decrements flash timers and removes expired flashes
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		flash.DurationMs -= dt
		if flash.DurationMs <= 0 {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		e.RemoveComponent(components.Flash)
	}
}

func updateHealthBars(ecs *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLiveMs -= dt
		if bar.TimeToLiveMs <= 0 {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		e.RemoveComponent(components.HealthBar)
	}
}

// TriggerHitFlash flashes an enemy white.
func TriggerHitFlash(entry *donburi.Entry) {
	setFlash(entry, components.FlashData{DurationMs: cfg.Combat.FlashMs, R: 1, G: 1, B: 1})
}

// TriggerDamageFlash tints the player red.
func TriggerDamageFlash(entry *donburi.Entry) {
	setFlash(entry, components.FlashData{DurationMs: cfg.Combat.FlashMs, R: 1, G: 0.3, B: 0.3})
}

func setFlash(entry *donburi.Entry, flash components.FlashData) {
	if entry.HasComponent(components.Flash) {
		components.Flash.SetValue(entry, flash)
		return
	}
	donburi.Add(entry, components.Flash, &flash)
}
