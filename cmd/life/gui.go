package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/platform/gui"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var (
	guiFlags     sessionFlags
	flagWinW     int
	flagWinH     int
	flagCellSize int
)

var guiCmd = &cobra.Command{
	Use:   "gui [mode]",
	Short: "Play in a window",
	Long: `Open a desktop window for a Life session. Requires a binary built with
-tags ebiten.

Controls are the same as in the terminal. Additionally:
  Left click   - Toggle cell under the pointer
  Mouse wheel  - Zoom
  W/A/S/D      - Pan the window view
  Q/Esc        - Close the window

Examples:
  go build -tags ebiten ./cmd/life
  life gui --pattern glider-gun --cell 8`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func init() {
	guiFlags.register(guiCmd)
	guiCmd.Flags().IntVar(&flagWinW, "width", 960, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagWinH, "height", 640, "Window height in pixels")
	guiCmd.Flags().IntVar(&flagCellSize, "cell", gui.DefaultCellSize, "Initial cell size in pixels")
}

func runGUI(_ *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "life-gui")

	cfg, err := guiFlags.prepare()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}
	game, ok := g.(*life.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot run in a window\n", mode)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := gui.Options{
		Width:    flagWinW,
		Height:   flagWinH,
		CellSize: flagCellSize,
		TickRate: flagFPS,
		Seed:     flagSeed,
		OnSave: func(b registry.BoardState) (string, error) {
			name, err := tui.SaveBoard(store, mode, b, time.Now())
			if err != nil {
				logger.Warn("save failed", "err", err)
				return "", err
			}
			logger.Info("board saved", "name", name)
			return name, nil
		},
	}

	if guiFlags.load != "" {
		board, loadErr := loadBoard(store, guiFlags.load)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading board %q: %v\n", guiFlags.load, loadErr)
			os.Exit(1)
		}
		opts.Board = &board
	}

	if err := gui.Run(game, cfg, opts); err != nil {
		if errors.Is(err, gui.ErrUnavailable) {
			fmt.Fprintln(os.Stderr, "Rebuild with: go build -tags ebiten ./cmd/life")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
