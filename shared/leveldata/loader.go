package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	LayerWalls   = "walls"
	LayerPortals = "portals"
	GroupSpawns  = "Spawns"
)

// LoadGrid parses a TMX file into a Grid. Any non-empty tile on the walls
// layer becomes a wall, on the portals layer a portal. Objects in the
// Spawns group become spawn points; their species comes from a "species"
// property, falling back to the object name.
func LoadGrid(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: non-square tiles %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	name := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	grid := NewGrid(name, levelMap.Width, levelMap.Height, float64(levelMap.TileWidth))

	for _, layer := range levelMap.Layers {
		var kind TileKind
		switch layer.Name {
		case LayerWalls:
			kind = TileWall
		case LayerPortals:
			kind = TilePortal
		default:
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				grid.Set(x, y, kind)
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupSpawns {
			continue
		}
		for _, o := range og.Objects {
			species := o.Properties.GetString("species")
			if species == "" {
				species = o.Name
			}
			grid.Spawns = append(grid.Spawns, SpawnPoint{
				X:       o.X,
				Y:       o.Y,
				Species: strings.ToLower(species),
			})
		}
	}

	// Stable order keeps placement indices reproducible between runs.
	sort.SliceStable(grid.Spawns, func(i, j int) bool {
		if grid.Spawns[i].Y != grid.Spawns[j].Y {
			return grid.Spawns[i].Y < grid.Spawns[j].Y
		}
		return grid.Spawns[i].X < grid.Spawns[j].X
	})

	return grid, nil
}

// LoadAllGrids discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllGrids(fsys fs.FS, dir string) (map[string]*Grid, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	grids := make(map[string]*Grid, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		grid, err := LoadGrid(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		grids[grid.Name] = grid
		names = append(names, grid.Name)
	}

	sort.Strings(names)
	return grids, names, nil
}
