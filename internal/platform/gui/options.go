package gui

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-life/internal/registry"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: window support requires building with -tags ebiten")

// Options configure the window.
type Options struct {
	Width, Height int // Window size in pixels
	CellSize      int // Initial pixels per cell
	TickRate      int
	Seed          int64

	// Board replaces the start pattern when set.
	Board *registry.BoardState

	// OnSave persists a board and returns its name. Saving is disabled when nil.
	OnSave func(registry.BoardState) (string, error)
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 960
	}
	if o.Height <= 0 {
		o.Height = 640
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}
