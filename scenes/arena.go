package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/automoto/amoebash/systems"
	"github.com/automoto/amoebash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions configures one run.
type ArenaOptions struct {
	Seed int64
	// Grid is the level to play. Nil builds the default arena.
	Grid *leveldata.Grid
	// Bot hands the player to the autopilot.
	Bot        bool
	Difficulty cfg.BotDifficulty
	// Headless skips device input and rendering setup, for simulation.
	Headless bool
}

// ArenaScene owns the ECS world of one run.
type ArenaScene struct {
	ecs  *ecs.ECS
	opts ArenaOptions
	once sync.Once
}

func NewArenaScene(opts ArenaOptions) *ArenaScene {
	return &ArenaScene{opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// ECS exposes the world, configuring it on first use.
func (as *ArenaScene) ECS() *ecs.ECS {
	as.once.Do(as.configure)
	return as.ecs
}

// Over reports whether the run has ended.
func (as *ArenaScene) Over() bool {
	return as.ecs != nil && systems.IsSessionOver(as.ecs)
}

// LevelName is the name of the level being played.
func (as *ArenaScene) LevelName() string {
	return as.opts.Grid.Name
}

// Close tears down the level geometry.
func (as *ArenaScene) Close() {
	if as.ecs != nil {
		systems.UnloadLevel(as.ecs)
	}
}

func (as *ArenaScene) configure() {
	if as.opts.Grid == nil {
		as.opts.Grid = leveldata.DefaultArena(cfg.C.ArenaCols, cfg.C.ArenaRows, cfg.C.TileSize)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateSession)
	if !as.opts.Headless {
		ecs.AddSystem(systems.UpdateInput)
		ecs.AddSystem(systems.UpdateDebugToggle)
	}
	ecs.AddSystem(systems.UpdateBots) // Must run before UpdatePlayer
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and session over checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateIndicators))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawIndicators)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawPause)
	ecs.AddRenderer(cfg.HUD, systems.DrawGameOver)

	as.ecs = ecs

	factory.CreateSession(as.ecs, as.opts.Seed)
	factory.CreatePause(as.ecs)

	// Create the level entity and the collision space sized to it.
	grid := as.opts.Grid
	factory.CreateLevel(as.ecs, grid)
	cell := cfg.Collision.CellSize
	factory.CreateSpace(as.ecs, int(grid.Width()), int(grid.Height()), cell, cell)
	factory.CreateCamera(as.ecs)

	spawn := factory.PopulateLevel(as.ecs, grid)
	var player *donburi.Entry
	if as.opts.Bot {
		player = factory.CreateBotPlayer(as.ecs, spawn.X, spawn.Y, as.opts.Difficulty)
	} else {
		player = factory.CreatePlayer(as.ecs, spawn.X, spawn.Y)
	}

	// Start the camera on the player instead of easing in from the origin.
	if cameraEntry, ok := components.Camera.First(as.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		pos := components.Motion.Get(player).Position
		camera.Position.X = pos.X - camera.Width/2
		camera.Position.Y = pos.Y - camera.Height/2
	}
}
