// Package config provides YAML-based configuration loading and speed
// presets for Life sessions.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/automaton"
)

// LifeConfig contains all configuration for a Life session.
type LifeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Render RenderConfig `yaml:"render"`
	Start  StartConfig  `yaml:"start"`
}

// BoardConfig defines the initial grid.
type BoardConfig struct {
	Bounds        BoundsConfig `yaml:"bounds"`
	Policy        string       `yaml:"policy"`         // "tracked" or "unbounded"
	RandomDensity float64      `yaml:"random_density"` // Fraction of cells alive after randomize
}

// BoundsConfig is an inclusive coordinate rectangle.
type BoundsConfig struct {
	MinX int `yaml:"min_x"`
	MinY int `yaml:"min_y"`
	MaxX int `yaml:"max_x"`
	MaxY int `yaml:"max_y"`
}

// TimingConfig defines the automatic step cadence.
type TimingConfig struct {
	StepInterval time.Duration `yaml:"step_interval"`
	Speed        string        `yaml:"speed,omitempty"` // Preset name, overrides StepInterval
}

// RenderConfig defines how cells are drawn in the terminal.
type RenderConfig struct {
	AliveGlyph string `yaml:"alive_glyph"`
	DeadGlyph  string `yaml:"dead_glyph"`
	AliveColor string `yaml:"alive_color"`
	ShowGrid   bool   `yaml:"show_grid"` // Draw dead glyphs inside bounds
}

// StartConfig defines what the board contains when a session begins.
type StartConfig struct {
	Pattern string `yaml:"pattern,omitempty"` // Pattern ID or file path; "random" for a soup
}

// Rect converts the bounds to the engine's rectangle type.
func (b BoundsConfig) Rect() automaton.Rect {
	return automaton.Rect{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// EvalPolicy returns the parsed evaluation policy.
func (c LifeConfig) EvalPolicy() (automaton.EvalPolicy, error) {
	p, ok := automaton.ParsePolicy(c.Board.Policy)
	if !ok {
		return automaton.Tracked, fmt.Errorf("config: unknown policy %q", c.Board.Policy)
	}
	return p, nil
}

// Validate checks the config for values the engine or renderer cannot use.
func (c LifeConfig) Validate() error {
	if c.Board.Bounds.Rect().Empty() {
		return fmt.Errorf("config: empty board bounds %+v", c.Board.Bounds)
	}
	if _, err := c.EvalPolicy(); err != nil {
		return err
	}
	if c.Board.RandomDensity < 0 || c.Board.RandomDensity > 1 {
		return fmt.Errorf("config: random_density %v outside [0, 1]", c.Board.RandomDensity)
	}
	if c.Timing.StepInterval < 0 {
		return fmt.Errorf("config: negative step_interval %v", c.Timing.StepInterval)
	}
	if c.Timing.Speed != "" {
		if _, ok := ParseSpeedPreset(c.Timing.Speed); !ok {
			return fmt.Errorf("config: unknown speed %q", c.Timing.Speed)
		}
	}
	if len([]rune(c.Render.AliveGlyph)) > 1 || len([]rune(c.Render.DeadGlyph)) > 1 {
		return fmt.Errorf("config: glyphs must be a single character")
	}
	return nil
}
