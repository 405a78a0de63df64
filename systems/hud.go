package systems

import (
	"fmt"

	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// DrawHUD prints the player's health and the run counters.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs.World)
	if session == nil {
		return
	}

	health := "dead"
	if playerEntry, ok := tags.Player.First(ecs.World); ok && playerEntry.HasComponent(components.Health) {
		hp := components.Health.Get(playerEntry)
		health = fmt.Sprintf("%d/%d", hp.Current, hp.Max)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("HP %s  kills %d  phase %d  enemies %d", health, session.Kills, session.FinalBossPhase, countEnemies(ecs)),
		8, 8)
}

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy))

func countEnemies(ecs *ecs.ECS) int {
	return enemyQuery.Count(ecs.World)
}
