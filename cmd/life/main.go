// life runs Conway's Game of Life in the terminal, over SSH or in a window.
//
// Usage:
//
//	life list                - List available modes
//	life play [mode]         - Play a mode
//	life menu                - Start menu to pick modes interactively
//	life serve               - Start SSH server for remote play
//	life patterns            - List the pattern library
//	life saves               - List saved boards
//	life history [mode]      - Show recent sessions
//	life run                 - Run a board headless and print the result
//	life gui [mode]          - Play in a window (requires -tags ebiten)
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible soups
//	--db <path>         - Set database path (default: ~/.life/life.db)
//	--log-level <level> - Set log level (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-life/internal/games/life"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life is a terminal host for Conway's Game of Life. Draw cells with the
cursor or the mouse, run the board, save it and come back later.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  patterns  - List the pattern library
  saves     - List or remove saved boards
  history   - View recent sessions
  run       - Run a board headless
  gui       - Play in a window

Examples:
  life list
  life play --pattern glider-gun
  life play life_unbounded --pattern r-pentomino --speed fast
  life menu
  life serve --ssh :2222
  life run --pattern pulsar --generations 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/life.db", "Path to boards and history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(guiCmd)
}

// newLogger builds the command logger. Unknown levels fall back to info.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
