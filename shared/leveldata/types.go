// Package leveldata describes arena levels as a tile grid. It is pure data
// plus TMX parsing and has no dependency on ebiten, donburi or resolv.
package leveldata

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// TileKind classifies a grid cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TilePortal
)

// SpawnPoint is an entity placement in world coordinates.
type SpawnPoint struct {
	X, Y    float64
	Species string // "player", "basic", "drifter", "orbiter", "charger", "boss", "finalboss"
}

// Grid is a level's tile classification, row-major.
type Grid struct {
	Name     string
	Cols     int
	Rows     int
	TileSize float64
	Tiles    []TileKind
	Spawns   []SpawnPoint
}

func NewGrid(name string, cols, rows int, tileSize float64) *Grid {
	return &Grid{
		Name:     name,
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Tiles:    make([]TileKind, cols*rows),
	}
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

// At returns the tile at (col, row). Cells outside the grid read as walls.
func (g *Grid) At(col, row int) TileKind {
	if !g.InBounds(col, row) {
		return TileWall
	}
	return g.Tiles[row*g.Cols+col]
}

func (g *Grid) Set(col, row int, kind TileKind) {
	if g.InBounds(col, row) {
		g.Tiles[row*g.Cols+col] = kind
	}
}

// CellCenter maps a grid cell to the world position of its centre.
func (g *Grid) CellCenter(col, row int) dmath.Vec2 {
	return dmath.Vec2{
		X: (float64(col) + 0.5) * g.TileSize,
		Y: (float64(row) + 0.5) * g.TileSize,
	}
}

// WorldToCell maps a world position to the cell containing it.
func (g *Grid) WorldToCell(p dmath.Vec2) (col, row int) {
	return int(p.X / g.TileSize), int(p.Y / g.TileSize)
}

// BorderDistance is the number of cells between (col, row) and the nearest
// grid border; cells on the outermost ring have distance 0.
func (g *Grid) BorderDistance(col, row int) int {
	return min(col, row, g.Cols-1-col, g.Rows-1-row)
}

func (g *Grid) Width() float64  { return float64(g.Cols) * g.TileSize }
func (g *Grid) Height() float64 { return float64(g.Rows) * g.TileSize }

// SpawnsOf returns the spawn points for one species.
func (g *Grid) SpawnsOf(species string) []SpawnPoint {
	var out []SpawnPoint
	for _, s := range g.Spawns {
		if s.Species == species {
			out = append(out, s)
		}
	}
	return out
}

func (s SpawnPoint) Pos() dmath.Vec2 { return dmath.Vec2{X: s.X, Y: s.Y} }
