package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show recent sessions",
	Long: `Display recent sessions with their generation count and populations.
Without a mode, sessions of every mode are listed.

Examples:
  life history
  life history life_unbounded --limit 20
  life history -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse history in the terminal UI")
}

func runHistory(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
		if !registry.Exists(mode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
			fmt.Fprintln(os.Stderr, "Run 'life list' to see available modes.")
			os.Exit(1)
		}
	}

	store := mustOpenStore()
	defer store.Close()

	if flagHistoryInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	sessions, err := store.RecentSessions(mode, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life play' and let a board evolve to record one.")
		return
	}

	fmt.Printf("  %-14s  %8s  %6s  %6s  %8s  %s\n", "Mode", "Gens", "Peak", "Final", "Time", "Date")
	fmt.Printf("  %-14s  %8s  %6s  %6s  %8s  %s\n", "----", "----", "----", "-----", "----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-14s  %8d  %6d  %6d  %8s  %s\n",
			s.Mode, s.Generations, s.PeakPopulation, s.FinalPopulation,
			s.Duration.Round(time.Second), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if mode != "" {
		stats, err := store.GetModeStats(mode)
		if err == nil {
			fmt.Println()
			fmt.Printf("Sessions: %d  Total generations: %d  Longest: %d  Best peak: %d\n",
				stats.Sessions, stats.TotalGenerations, stats.LongestRun, stats.BestPeak)
		}
	}
}
