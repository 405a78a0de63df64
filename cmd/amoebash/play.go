package main

import (
	"errors"
	"image"

	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/scenes"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/automoto/amoebash/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

var flagBot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play one run after another.

Controls:
  WASD/Arrows  - Move (you face where you move)
  Space/Z      - Fire
  Shift/X      - Dash
  Esc/P        - Pause
  Enter        - Restart (after the run ends)
  F1           - Toggle collision debug view

Examples:
  amoebash play
  amoebash play --bot --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBot, "bot", false, "Let the bot play")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Bot difficulty: easy, normal, hard")
}

// Game adapts an arena run to ebiten and restarts it on demand.
type Game struct {
	bounds image.Rectangle
	scene  *scenes.ArenaScene
	grid   *leveldata.Grid
	saved  bool
}

func NewGame(grid *leveldata.Grid) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		grid:   grid,
	}
	g.restart()
	return g
}

func (g *Game) restart() {
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = scenes.NewArenaScene(scenes.ArenaOptions{
		Seed:       runSeed(),
		Grid:       g.grid,
		Bot:        flagBot,
		Difficulty: cfg.ParseBotDifficulty(flagDifficulty),
	})
	g.saved = false
}

func (g *Game) Update() error {
	g.scene.Update()

	if !g.scene.Over() {
		return nil
	}
	if !g.saved {
		g.saved = true
		difficulty := ""
		if flagBot {
			difficulty = flagDifficulty
		}
		rec := systems.NewRunRecord(g.scene.ECS(), g.scene.LevelName(), difficulty)
		if err := systems.SaveRun(rec); err != nil && !errors.Is(err, systems.ErrNoStore) {
			log.Warn("could not save run", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.restart()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	grid, err := loadLevel()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Amoebash")
	ebiten.SetTPS(cfg.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for the run history
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}

	return ebiten.RunGame(NewGame(grid))
}
