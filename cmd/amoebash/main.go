// amoebash is a top-down arena shooter against six species of amoeba.
//
// Usage:
//
//	amoebash play            - Open a window and play
//	amoebash sim             - Run a headless bot match
//	amoebash runs            - List recorded runs
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible runs (default: time based)
//	--level <path>    - TMX level to load instead of the default arena
//	--tuning <path>   - YAML tuning overlay
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	cfg "github.com/automoto/amoebash/config"
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagLevel    string
	flagTuning   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "amoebash",
	Short: "Amoebash - top-down arena shooter",
	Long: `Amoebash drops you into an arena full of amoebas. Clear it, beat the
final boss and leave through the portal.

Available commands:
  play  - Play in a window
  sim   - Let the bot play a headless match
  runs  - Show recorded runs

Examples:
  amoebash play
  amoebash play --level ./levels/cave.tmx --seed 7
  amoebash sim --ticks 3600 --difficulty hard
  amoebash runs`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)

		path, err := cfg.Load(flagTuning)
		if err != nil {
			return err
		}
		if path != "" {
			log.Info("tuning loaded", "path", path)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a TMX level (default: built-in arena)")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a YAML tuning overlay")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}

// runSeed resolves the --seed flag.
func runSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadLevel reads --level, or returns nil for the built-in arena.
func loadLevel() (*leveldata.Grid, error) {
	if flagLevel == "" {
		return nil, nil
	}
	grid, err := leveldata.LoadGrid(os.DirFS(filepath.Dir(flagLevel)), filepath.Base(flagLevel))
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return grid, nil
}
