package leveldata

// DefaultArena builds a walled room with a few pillars and one spawn of
// every species. It stands in for the procedural map generator when no TMX
// level is given.
func DefaultArena(cols, rows int, tileSize float64) *Grid {
	g := NewGrid("default", cols, rows, tileSize)

	for c := 0; c < cols; c++ {
		g.Set(c, 0, TileWall)
		g.Set(c, rows-1, TileWall)
	}
	for r := 0; r < rows; r++ {
		g.Set(0, r, TileWall)
		g.Set(cols-1, r, TileWall)
	}

	// Pillars stay clear of the border ring where the final boss spawns minions.
	for _, p := range [][2]int{
		{cols / 4, rows / 4},
		{3 * cols / 4, rows / 4},
		{cols / 4, 3 * rows / 4},
		{3 * cols / 4, 3 * rows / 4},
	} {
		g.Set(p[0], p[1], TileWall)
		g.Set(p[0]+1, p[1], TileWall)
	}

	g.Set(cols-2, rows/2, TilePortal)

	spawn := func(col, row int, species string) {
		c := g.CellCenter(col, row)
		g.Spawns = append(g.Spawns, SpawnPoint{X: c.X, Y: c.Y, Species: species})
	}
	spawn(cols/2, rows-4, "player")
	spawn(cols/3, rows/2, "basic")
	spawn(2*cols/3, rows/2, "basic")
	spawn(cols/2, rows/3, "drifter")
	spawn(cols/3, rows/3, "orbiter")
	spawn(2*cols/3, rows/3, "orbiter")
	spawn(cols/5, rows/2, "charger")
	spawn(cols/2, rows/5, "boss")
	spawn(cols/2, rows/2, "finalboss")

	return g
}
