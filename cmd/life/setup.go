package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// sessionFlags are the flags shared by the commands that start a board.
type sessionFlags struct {
	config  string
	pattern string
	load    string
	speed   string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "Start pattern: library ID, file path or 'random'")
	cmd.Flags().StringVar(&f.load, "load", "", "Start from a saved board")
	cmd.Flags().StringVar(&f.speed, "speed", "", "Speed preset: slow, normal, fast, turbo")
}

// prepare loads the config, applies the speed preset, resolves the start
// pattern and installs the result as the defaults new sessions use.
func (f sessionFlags) prepare() (config.LifeConfig, error) {
	cfg, err := config.LoadLife(f.config)
	if err != nil {
		return cfg, err
	}

	if f.speed != "" {
		preset, ok := config.ParseSpeedPreset(f.speed)
		if !ok {
			return cfg, fmt.Errorf("unknown speed preset %q (use slow, normal, fast or turbo)", f.speed)
		}
		config.ApplySpeedPreset(&cfg, preset)
	}

	opts := life.Options{Config: cfg}
	switch f.pattern {
	case "":
	case "random":
		opts.Config.Start.Pattern = "random"
	default:
		p, err := patterns.Resolve(f.pattern, patternDir())
		if err != nil {
			return cfg, err
		}
		opts.Start = &p
	}

	life.SetDefaults(opts)
	return opts.Config, nil
}

// patternDir is the user pattern directory.
func patternDir() string {
	return config.UserDir("patterns")
}

// loadBoard reads a saved board from the database.
func loadBoard(store *storage.Store, name string) (registry.BoardState, error) {
	if store == nil {
		return registry.BoardState{}, errors.New("no database to load from")
	}
	b, err := store.LoadBoard(name)
	if err != nil {
		return registry.BoardState{}, err
	}
	policy, ok := automaton.ParsePolicy(b.Policy)
	if !ok {
		return registry.BoardState{}, fmt.Errorf("board %q has unknown policy %q", name, b.Policy)
	}
	return registry.BoardState{Policy: policy, Generation: b.Generation, Cells: b.Cells}, nil
}

// modeArg returns the mode named by args, defaulting to the tracked mode.
func modeArg(args []string) (string, error) {
	mode := string(life.ModeTracked)
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q", mode)
	}
	return mode, nil
}

// openStore opens the database. Failures are logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// logFile opens the play log so log lines do not corrupt the alt screen.
func logFile() (*os.File, error) {
	path := config.UserDir("life.log")
	if path == "" {
		return nil, errors.New("cannot resolve home directory")
	}
	if err := os.MkdirAll(config.UserDir(), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
