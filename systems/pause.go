package systems

import (
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause when the player presses the pause action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Input) {
		return
	}
	if components.Input.Get(playerEntry).JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
}

// IsPaused reports whether gameplay is paused.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	return ok && components.Pause.Get(entry).IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", int(width)/2-18, int(height)/2-8)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
