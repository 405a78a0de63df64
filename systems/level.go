package systems

import (
	"image/color"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills walls and portals. Both are axis-aligned.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(ecs)
	if !ok {
		return
	}

	draw := func(e *donburi.Entry, c color.Color) {
		m := components.Motion.Get(e)
		if !inView(camera, m) {
			return
		}
		x := m.Position.X - m.Scale.X/2 - camera.Position.X
		y := m.Position.Y - m.Scale.Y/2 - camera.Position.Y
		vector.FillRect(screen, float32(x), float32(y), float32(m.Scale.X), float32(m.Scale.Y), c, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) { draw(e, cfg.WallGray) })
	tags.Portal.Each(ecs.World, func(e *donburi.Entry) { draw(e, cfg.PortalCyan) })
}

// UnloadLevel removes every wall and portal, forgetting their cached
// geometry, and drops the bot's nav grid.
func UnloadLevel(ecs *ecs.ECS) {
	st := stateFor(ecs.World)

	var toRemove []*donburi.Entry
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) { toRemove = append(toRemove, e) })
	tags.Portal.Each(ecs.World, func(e *donburi.Entry) { toRemove = append(toRemove, e) })

	for _, e := range toRemove {
		st.resolver.Cache.Forget(e.Entity())
		destroyEntity(ecs, e)
	}
	st.navGrid = nil

	log.Debug("level unloaded", "removed", len(toRemove), "cached_walls", st.resolver.Cache.Len())
}
