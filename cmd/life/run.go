package main

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/patterns/formats"
	"github.com/vovakirdan/tui-life/internal/platform/headless"
)

var (
	runFlags        sessionFlags
	flagGenerations int
	flagWidth       int
	flagHeight      int
	flagEvery       int
	flagOut         string
)

var runCmd = &cobra.Command{
	Use:   "run [mode]",
	Short: "Run a board headless and print the result",
	Long: `Apply a number of generations without a display, then print the board
around the origin and summary statistics. The run stops early when every
cell has died.

Examples:
  life run --pattern pulsar --generations 3
  life run life_unbounded --pattern r-pentomino --generations 1103 --width 120
  life run --pattern random --seed 42 --generations 500 --every 100
  life run --load life-20240309-140506 --generations 50 --out next.cells`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().IntVarP(&flagGenerations, "generations", "g", 100, "Number of generations to apply")
	runCmd.Flags().IntVar(&flagWidth, "width", 40, "Width of the printed view in cells (0 disables printing)")
	runCmd.Flags().IntVar(&flagHeight, "height", 20, "Height of the printed view in cells")
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Log progress every N generations")
	runCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the final board to a .cells file")
}

func runRun(_ *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "life")

	cfg, err := runFlags.prepare()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	policy, err := cfg.EvalPolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if mode == string(life.ModeUnbounded) {
		policy = automaton.Unbounded
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := headless.Options{
		Config:      cfg,
		Policy:      policy,
		Start:       life.Defaults().Start,
		Generations: flagGenerations,
		Seed:        seed,
		Every:       flagEvery,
		Logger:      logger,
	}

	if runFlags.load != "" {
		store := mustOpenStore()
		board, loadErr := loadBoard(store, runFlags.load)
		store.Close()
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading board %q: %v\n", runFlags.load, loadErr)
			os.Exit(1)
		}
		opts.Board = &board
	}

	res, err := headless.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagWidth > 0 && flagHeight > 0 {
		alive := firstRuneOr(cfg.Render.AliveGlyph, 'O')
		dead := firstRuneOr(cfg.Render.DeadGlyph, '.')
		if err := headless.Render(os.Stdout, res.Engine, headless.CenteredView(flagWidth, flagHeight), alive, dead); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}

	fmt.Printf("Generation: %d  Population: %d  Peak: %d  Policy: %s\n",
		res.Engine.Generation(), res.Population, res.Peak, res.Engine.Policy())
	fmt.Printf("Applied %d generations in %v", res.Generations, res.Elapsed.Round(time.Microsecond))
	if res.Extinct {
		fmt.Print(" (extinct)")
	}
	fmt.Println()

	if flagOut != "" {
		data := formats.EncodeCells(formats.Pattern{
			Name:        fmt.Sprintf("%s generation %d", mode, res.Engine.Generation()),
			Description: "Written by life run",
			Cells:       res.Engine.LiveCells(),
		})
		if err := os.WriteFile(flagOut, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOut, err)
			os.Exit(1)
		}
		logger.Info("board written", "path", flagOut, "cells", res.Population)
	}
}

// firstRuneOr returns the first rune of s, or def when s is empty.
func firstRuneOr(s string, def rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return def
	}
	return r
}

