package main

import (
	"fmt"

	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/scenes"
	"github.com/automoto/amoebash/systems"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagTicks      int
	flagDifficulty string
	flagNoSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the bot play a headless match",
	Long: `Run the full simulation without a window, with the bot as the player.
The run stops when it is won or lost, or after --ticks updates.

Examples:
  amoebash sim
  amoebash sim --ticks 7200 --difficulty hard --seed 42
  amoebash sim --no-save --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of updates to simulate")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Bot difficulty: easy, normal, hard")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	grid, err := loadLevel()
	if err != nil {
		return err
	}

	seed := runSeed()
	scene := scenes.NewArenaScene(scenes.ArenaOptions{
		Seed:       seed,
		Grid:       grid,
		Bot:        true,
		Difficulty: cfg.ParseBotDifficulty(flagDifficulty),
		Headless:   true,
	})
	defer scene.Close()

	log.Info("simulation started", "seed", seed, "ticks", flagTicks, "difficulty", flagDifficulty)
	for i := 0; i < flagTicks && !scene.Over(); i++ {
		scene.Update()
	}

	rec := systems.NewRunRecord(scene.ECS(), scene.LevelName(), flagDifficulty)
	fmt.Printf("seed %d  ticks %d  kills %d  phase %d  won %t\n",
		rec.Seed, rec.Ticks, rec.Kills, rec.FinalBossPhase, rec.Won)

	if flagNoSave {
		return nil
	}
	if err := systems.InitPersistence(); err != nil {
		return err
	}
	return systems.SaveRun(rec)
}
