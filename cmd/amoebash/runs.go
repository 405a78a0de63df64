package main

import (
	"fmt"

	"github.com/automoto/amoebash/systems"
	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `List the most recent runs, newest first.

Examples:
  amoebash runs
  amoebash runs --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	if err := systems.InitPersistence(); err != nil {
		return err
	}
	runs, err := systems.LoadRuns()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'amoebash play' or 'amoebash sim' to record one.")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-8s  %-7s  %-5s  %-5s  %s\n", "Date", "Level", "Bot", "Ticks", "Kills", "Phase", "Result")
	fmt.Printf("  %-16s  %-10s  %-8s  %-7s  %-5s  %-5s  %s\n", "----", "-----", "---", "-----", "-----", "-----", "------")

	shown := 0
	for i := len(runs) - 1; i >= 0 && shown < flagRunsLimit; i-- {
		r := runs[i]
		result := "lost"
		if r.Won {
			result = "won"
		}
		bot := r.Difficulty
		if bot == "" {
			bot = "-"
		}
		fmt.Printf("  %-16s  %-10s  %-8s  %-7d  %-5d  %-5d  %s\n",
			r.Time.Local().Format("2006-01-02 15:04"), r.Level, bot, r.Ticks, r.Kills, r.FinalBossPhase, result)
		shown++
	}
	return nil
}
