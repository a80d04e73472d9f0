package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var playFlags sessionFlags

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a Life session in the specified mode (default: life).

Controls:
  Space/P          - Run/pause
  N/.              - Step one generation
  Arrows/hjkl      - Move cursor
  Enter/X/click    - Toggle cell
  W/A/S/D          - Pan camera
  0                - Recenter
  C                - Clear board
  R                - Random soup
  +/-              - Faster/slower
  Ctrl+S           - Save board
  Q/Ctrl+C         - Quit

Speed options:
  slow   - One generation every 500ms
  normal - One generation every 200ms
  fast   - One generation every 80ms
  turbo  - One generation per tick

Examples:
  life play
  life play --pattern glider-gun
  life play life_unbounded --pattern r-pentomino --speed fast
  life play --pattern ./my-pattern.cells
  life play --load life-20240309-140506
  life play --config ./my-life.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'life list' to see available modes.")
		os.Exit(1)
	}

	// Log to a file while the alt screen is active
	var logOut io.Writer = io.Discard
	if f, logErr := logFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "life")

	if _, err := playFlags.prepare(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	var opts []tui.ModelOption
	if playFlags.load != "" {
		board, loadErr := loadBoard(store, playFlags.load)
		if loadErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error loading board %q: %v\n", playFlags.load, loadErr)
			os.Exit(1)
		}
		opts = append(opts, tui.WithBoard(board))
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
