package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg LifeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("life"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLifeConfig()) {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, DefaultLifeConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown mode should have no default YAML")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultLifeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Board.Bounds.Rect() != automaton.Square(100) {
		t.Errorf("default bounds = %+v, expected -100..100", cfg.Board.Bounds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LifeConfig)
	}{
		{"empty bounds", func(c *LifeConfig) { c.Board.Bounds.MaxX = c.Board.Bounds.MinX - 1 }},
		{"bad policy", func(c *LifeConfig) { c.Board.Policy = "sideways" }},
		{"density above one", func(c *LifeConfig) { c.Board.RandomDensity = 1.5 }},
		{"negative interval", func(c *LifeConfig) { c.Timing.StepInterval = -time.Second }},
		{"bad speed", func(c *LifeConfig) { c.Timing.Speed = "ludicrous" }},
		{"wide glyph", func(c *LifeConfig) { c.Render.AliveGlyph = "##" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLifeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadLifeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  policy: unbounded\ntiming:\n  step_interval: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLife(path)
	if err != nil {
		t.Fatalf("LoadLife failed: %v", err)
	}
	if p, _ := cfg.EvalPolicy(); p != automaton.Unbounded {
		t.Errorf("policy = %v, expected unbounded", p)
	}
	if cfg.Timing.StepInterval != time.Second {
		t.Errorf("step_interval = %v, expected 1s", cfg.Timing.StepInterval)
	}
	// Unset fields keep defaults
	if cfg.Render.AliveGlyph != "█" {
		t.Errorf("alive_glyph = %q, expected default", cfg.Render.AliveGlyph)
	}
}

func TestLoadLifeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLife(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board: [oops"), 0o644)
	if _, err := LoadLife(bad); err == nil {
		t.Error("expected error for unparsable custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("board:\n  random_density: 3\n"), 0o644)
	if _, err := LoadLife(invalid); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestLoadLifeSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	// Nothing on disk: embedded default
	cfg, err := LoadLife("")
	if err != nil {
		t.Fatalf("LoadLife failed: %v", err)
	}
	if cfg.Timing.StepInterval != 200*time.Millisecond {
		t.Errorf("default interval = %v", cfg.Timing.StepInterval)
	}

	// Local configs directory
	os.MkdirAll(filepath.Join(work, "configs"), 0o755)
	os.WriteFile(filepath.Join(work, "configs", "life.yaml"), []byte("timing:\n  step_interval: 300ms\n"), 0o644)
	cfg, _ = LoadLife("")
	if cfg.Timing.StepInterval != 300*time.Millisecond {
		t.Errorf("local interval = %v, expected 300ms", cfg.Timing.StepInterval)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".life", "configs")
	os.MkdirAll(userDir, 0o755)
	os.WriteFile(filepath.Join(userDir, "life.yaml"), []byte("timing:\n  step_interval: 400ms\n"), 0o644)
	cfg, _ = LoadLife("")
	if cfg.Timing.StepInterval != 400*time.Millisecond {
		t.Errorf("user interval = %v, expected 400ms", cfg.Timing.StepInterval)
	}

	// Invalid user file falls through to local
	os.WriteFile(filepath.Join(userDir, "life.yaml"), []byte("board:\n  policy: nope\n"), 0o644)
	cfg, _ = LoadLife("")
	if cfg.Timing.StepInterval != 300*time.Millisecond {
		t.Errorf("fallback interval = %v, expected 300ms", cfg.Timing.StepInterval)
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		name     string
		preset   string
		ok       bool
		interval time.Duration
	}{
		{"slow", "slow", true, 500 * time.Millisecond},
		{"normal", "Normal", true, 200 * time.Millisecond},
		{"fast", " fast ", true, 80 * time.Millisecond},
		{"turbo", "turbo", true, 0},
		{"unknown", "warp", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := ParseSpeedPreset(tc.preset)
			if ok != tc.ok {
				t.Fatalf("ParseSpeedPreset(%q) ok = %v", tc.preset, ok)
			}
			if ok && IntervalForPreset(p) != tc.interval {
				t.Errorf("IntervalForPreset(%s) = %v, expected %v", p, IntervalForPreset(p), tc.interval)
			}
		})
	}
}

func TestApplySpeedPreset(t *testing.T) {
	cfg := DefaultLifeConfig()
	ApplySpeedPreset(&cfg, SpeedSlow)

	if cfg.Timing.StepInterval != 500*time.Millisecond {
		t.Errorf("interval = %v, expected 500ms", cfg.Timing.StepInterval)
	}
	if cfg.EffectiveInterval() != 500*time.Millisecond {
		t.Errorf("EffectiveInterval = %v", cfg.EffectiveInterval())
	}

	cfg.Timing.Speed = ""
	cfg.Timing.StepInterval = 42 * time.Millisecond
	if cfg.EffectiveInterval() != 42*time.Millisecond {
		t.Errorf("EffectiveInterval without preset = %v", cfg.EffectiveInterval())
	}
}

func TestTicksPerStep(t *testing.T) {
	tests := []struct {
		interval time.Duration
		rate     int
		expected int
	}{
		{200 * time.Millisecond, 60, 12},
		{500 * time.Millisecond, 60, 30},
		{time.Second, 30, 30},
		{0, 60, 1},
		{5 * time.Millisecond, 60, 1},
		{200 * time.Millisecond, 0, 12}, // rate defaults to 60
	}

	for _, tc := range tests {
		if got := TicksPerStep(tc.interval, tc.rate); got != tc.expected {
			t.Errorf("TicksPerStep(%v, %d) = %d, expected %d", tc.interval, tc.rate, got, tc.expected)
		}
	}
}

func TestStepTimerCadence(t *testing.T) {
	timer := NewStepTimer(200*time.Millisecond, 60)

	fired := 0
	for i := 1; i <= 60; i++ {
		if timer.Tick() {
			fired++
			if i%12 != 0 {
				t.Errorf("fired on tick %d, expected multiples of 12", i)
			}
		}
	}
	if fired != 5 {
		t.Errorf("fired %d times in one second, expected 5", fired)
	}
}

func TestStepTimerFasterSlower(t *testing.T) {
	timer := NewStepTimer(200*time.Millisecond, 60)

	timer.Faster()
	if timer.Interval() != 120*time.Millisecond {
		t.Errorf("Faster from 200ms = %v, expected 120ms", timer.Interval())
	}

	timer.Slower()
	timer.Slower()
	if timer.Interval() != 350*time.Millisecond {
		t.Errorf("Slower twice = %v, expected 350ms", timer.Interval())
	}

	// Off-ladder intervals snap to the neighbor
	timer.SetInterval(150 * time.Millisecond)
	timer.Faster()
	if timer.Interval() != 120*time.Millisecond {
		t.Errorf("Faster from 150ms = %v, expected 120ms", timer.Interval())
	}

	timer.SetInterval(0)
	timer.Faster()
	if timer.Interval() != 0 || timer.Every() != 1 {
		t.Errorf("Faster at turbo should stay at 0, got %v", timer.Interval())
	}

	timer.SetInterval(time.Second)
	timer.Slower()
	if timer.Interval() != time.Second {
		t.Errorf("Slower at 1s should stay, got %v", timer.Interval())
	}
}
