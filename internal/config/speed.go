package config

import (
	"strings"
	"time"
)

// SpeedPreset represents a named step cadence.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// ParseSpeedPreset validates a preset name.
func ParseSpeedPreset(s string) (SpeedPreset, bool) {
	switch p := SpeedPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedTurbo:
		return p, true
	default:
		return "", false
	}
}

// IntervalForPreset returns the step interval for a speed preset.
// Turbo steps on every tick.
func IntervalForPreset(preset SpeedPreset) time.Duration {
	switch preset {
	case SpeedSlow:
		return 500 * time.Millisecond
	case SpeedFast:
		return 80 * time.Millisecond
	case SpeedTurbo:
		return 0
	default:
		return 200 * time.Millisecond
	}
}

// speedLadder is the set of intervals Faster and Slower move between.
var speedLadder = []time.Duration{
	0,
	40 * time.Millisecond,
	80 * time.Millisecond,
	120 * time.Millisecond,
	200 * time.Millisecond,
	350 * time.Millisecond,
	500 * time.Millisecond,
	time.Second,
}

// TicksPerStep converts an interval into platform ticks, rounding to the
// nearest tick and never returning less than one.
func TicksPerStep(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	tick := time.Second / time.Duration(tickRate)
	n := int((interval + tick/2) / tick)
	if n < 1 {
		n = 1
	}
	return n
}

// StepTimer counts platform ticks and reports when an automatic step is due.
type StepTimer struct {
	interval time.Duration
	tickRate int
	every    int
	ticks    int
}

// NewStepTimer creates a timer for the given interval and tick rate.
func NewStepTimer(interval time.Duration, tickRate int) *StepTimer {
	t := &StepTimer{tickRate: tickRate}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the cadence and restarts the countdown.
func (t *StepTimer) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	t.interval = interval
	t.every = TicksPerStep(interval, t.tickRate)
	t.ticks = 0
}

// Interval returns the configured step interval.
func (t *StepTimer) Interval() time.Duration {
	return t.interval
}

// Every returns how many ticks pass between automatic steps.
func (t *StepTimer) Every() int {
	return t.every
}

// Tick advances the timer by one platform tick and returns true when a step
// is due.
func (t *StepTimer) Tick() bool {
	t.ticks++
	if t.ticks >= t.every {
		t.ticks = 0
		return true
	}
	return false
}

// Reset restarts the countdown without changing the interval.
func (t *StepTimer) Reset() {
	t.ticks = 0
}

// Faster moves to the next shorter interval on the ladder.
func (t *StepTimer) Faster() {
	for i := len(speedLadder) - 1; i >= 0; i-- {
		if speedLadder[i] < t.interval {
			t.SetInterval(speedLadder[i])
			return
		}
	}
}

// Slower moves to the next longer interval on the ladder.
func (t *StepTimer) Slower() {
	for _, d := range speedLadder {
		if d > t.interval {
			t.SetInterval(d)
			return
		}
	}
}
