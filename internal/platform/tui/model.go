package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Exit tells the caller how a session ended.
type Exit int

const (
	ExitQuit Exit = iota // q / ctrl+c
	ExitBack             // b / esc, return to the menu
)

// Model is the Bubble Tea model for running a Life session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *registry.BoardState
	started    time.Time
	exit       Exit
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithBoard starts the session from a saved board instead of the configured
// start pattern.
func WithBoard(b registry.BoardState) ModelOption {
	return func(m *Model) {
		m.board = &b
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.board != nil {
		if p, ok := m.game.(registry.Persistent); ok {
			p.ImportBoard(*m.board)
		}
	}
	m.logger.Debug("session started", "mode", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.exit = ExitQuit
		return m.finish()
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.exit = ExitBack
		return m.finish()
	}
	return m, nil
}

// finish records the session and stops the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.recordSession()
	return m, tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Has(core.EventSaveRequested) {
		m.saveBoard()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveBoard persists the current board under a generated name and reports
// the outcome through the game's status line.
func (m *Model) saveBoard() {
	p, ok := m.game.(registry.Persistent)
	if !ok {
		return
	}

	msg := ""
	name, err := SaveBoard(m.store, m.game.ID(), p.ExportBoard(), time.Now())
	if err != nil {
		m.logger.Warn("save failed", "mode", m.game.ID(), "err", err)
		msg = "Save failed"
	} else {
		m.logger.Info("board saved", "name", name)
		msg = "Saved " + name
	}

	if n, ok := m.game.(registry.Notifier); ok {
		n.Notify(msg)
	}
}

// recordSession stores a history entry for the session. Sessions that never
// advanced a generation are not recorded.
func (m *Model) recordSession() {
	if m.store == nil {
		return
	}
	st := m.game.State()
	if st.Generation == 0 {
		return
	}

	_, err := m.store.SaveSession(storage.Session{
		Mode:            m.game.ID(),
		Generations:     st.Generation,
		PeakPopulation:  st.Peak,
		FinalPopulation: st.Population,
		Duration:        time.Since(m.started),
	})
	if err != nil {
		m.logger.Warn("cannot record session", "err", err)
	}
}

// Done reports whether the session has ended.
func (m Model) Done() bool {
	return m.quitting
}

// Exit returns how the session ended.
func (m Model) Exit() Exit {
	return m.exit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// ErrNoStore is returned by SaveBoard when persistence is unavailable.
var ErrNoStore = errors.New("tui: no store")

// SaveBoard stores a board named after its mode and the given time.
func SaveBoard(store *storage.Store, mode string, b registry.BoardState, at time.Time) (string, error) {
	if store == nil {
		return "", ErrNoStore
	}
	name := fmt.Sprintf("%s-%s", mode, at.Format("20060102-150405"))
	_, err := store.SaveBoard(storage.Board{
		Name:       name,
		Mode:       mode,
		Policy:     b.Policy.String(),
		Generation: b.Generation,
		Cells:      b.Cells,
	})
	if err != nil {
		return "", fmt.Errorf("tui: save board: %w", err)
	}
	return name, nil
}

// Run starts the Bubble Tea program with the given game and reports how the
// session ended.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, opts ...ModelOption) (Exit, error) {
	model := NewModel(game, store, cfg, logger, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks toggle cells
	)

	final, err := p.Run()
	if err != nil {
		return ExitQuit, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Exit(), nil
	}
	return ExitQuit, nil
}
