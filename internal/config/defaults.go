package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default Life configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Board: BoardConfig{
			Bounds: BoundsConfig{
				MinX: -100,
				MinY: -100,
				MaxX: 100,
				MaxY: 100,
			},
			Policy:        "tracked",
			RandomDensity: 0.25,
		},
		Timing: TimingConfig{
			StepInterval: 200 * time.Millisecond,
		},
		Render: RenderConfig{
			AliveGlyph: "█",
			DeadGlyph:  "·",
			AliveColor: "bright_green",
			ShowGrid:   true,
		},
		Start: StartConfig{
			Pattern: "glider",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(modeID string) []byte {
	switch modeID {
	case "life", "life_unbounded":
		return defaultLifeYAML
	default:
		return nil
	}
}
