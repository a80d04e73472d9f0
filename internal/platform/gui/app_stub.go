//go:build !ebiten

package gui

import (
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/games/life"
)

// Available reports whether this build can open a window.
const Available = false

// Run reports that the window host is not part of this build.
func Run(*life.Game, config.LifeConfig, Options) error {
	return ErrUnavailable
}
