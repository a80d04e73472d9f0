package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var menuFlags sessionFlags

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press B or Esc during a session to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Session history
  Q            - Quit

Examples:
  life menu
  life menu --pattern pulsar
  life menu --fps 30`,
	Run: runMenu,
}

func init() {
	menuFlags.register(menuCmd)
	menuCmd.Flags().MarkHidden("load") //nolint:errcheck // Flag exists
}

func runMenu(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if f, err := logFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "life")

	if _, err := menuFlags.prepare(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		logger.Debug("menu", "result", menuResult)

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				break
			}
			if !goBack {
				break
			}
			continue
		}

		game, err := registry.Create(menuResult.ModeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
			continue
		}

		exit, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			break
		}
		if exit == tui.ExitQuit {
			break
		}
	}
}
