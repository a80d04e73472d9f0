package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadLife loads Life configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadLife(customPath string) (LifeConfig, error) {
	cfg := DefaultLifeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("life.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "life.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	cfg = DefaultLifeConfig()
	if err := yaml.Unmarshal(defaultLifeYAML, &cfg); err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads a fallback config, ignoring files that are missing or invalid.
func tryLoad(path string) (LifeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LifeConfig{}, false
	}
	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LifeConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return LifeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir("configs")
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// UserDir returns a path under ~/.life, or empty if home is unavailable.
func UserDir(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".life"}, elem...)...)
}

// ApplySpeedPreset sets the step interval from a preset.
func ApplySpeedPreset(cfg *LifeConfig, preset SpeedPreset) {
	cfg.Timing.Speed = string(preset)
	cfg.Timing.StepInterval = IntervalForPreset(preset)
}

// EffectiveInterval returns the step interval, honoring a speed preset when set.
func (c LifeConfig) EffectiveInterval() time.Duration {
	if p, ok := ParseSpeedPreset(c.Timing.Speed); ok {
		return IntervalForPreset(p)
	}
	return c.Timing.StepInterval
}
