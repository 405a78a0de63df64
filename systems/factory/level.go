package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateLevel(ecs *ecs.ECS, grid *leveldata.Grid) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{Grid: grid})
	return level
}

// PopulateLevel creates the walls, portals and enemies of grid and returns
// where the player should start. Horizontal runs of wall tiles become one
// wall each. Spawn points naming an unknown species are skipped.
func PopulateLevel(ecs *ecs.ECS, grid *leveldata.Grid) (playerSpawn math.Vec2) {
	ts := grid.TileSize
	walls := 0

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; {
			kind := grid.At(col, row)
			if kind == leveldata.TileEmpty {
				col++
				continue
			}

			// Extend the run while the tile kind stays the same.
			end := col + 1
			for end < grid.Cols && grid.At(end, row) == kind {
				end++
			}

			x, y, w := float64(col)*ts, float64(row)*ts, float64(end-col)*ts
			switch kind {
			case leveldata.TileWall:
				CreateWall(ecs, x, y, w, ts)
				walls++
			case leveldata.TilePortal:
				CreatePortal(ecs, x, y, w, ts)
			}
			col = end
		}
	}

	playerSpawn = grid.CellCenter(grid.Cols/2, grid.Rows/2)
	if spawns := grid.SpawnsOf("player"); len(spawns) > 0 {
		playerSpawn = spawns[0].Pos()
	}

	enemies := 0
	for _, spawn := range grid.Spawns {
		if spawn.Species == "player" {
			continue
		}
		species, ok := components.ParseSpecies(spawn.Species)
		if !ok {
			log.Warn("skipping spawn with unknown species", "species", spawn.Species, "x", spawn.X, "y", spawn.Y)
			continue
		}
		CreateEnemy(ecs, species, spawn.X, spawn.Y)
		enemies++
	}

	log.Info("level populated", "level", grid.Name, "walls", walls, "enemies", enemies)
	return playerSpawn
}
