package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/automaton"
	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "life.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestModel creates an initialized model around an empty board.
func newTestModel(t *testing.T, store *storage.Store, opts ...ModelOption) (Model, *life.Game) {
	t.Helper()
	cfg := config.DefaultLifeConfig()
	cfg.Start.Pattern = ""
	game := life.New(life.ModeTracked, life.Options{Config: cfg})

	m := NewModel(game, store, testRuntime, nil, opts...)
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game
}

// send delivers a message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelClickAndSave(t *testing.T) {
	store := openTestStore(t)
	m, game := newTestModel(t, store)

	// Screen (41, 12) is grid (0, 0) on an 80x24 screen
	m, _ = send(t, m, tea.MouseMsg{X: 41, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg(time.Now()))
	if !game.Engine().IsAlive(0, 0) {
		t.Fatal("click should toggle (0, 0)")
	}

	m, _ = send(t, m, keyMsg("ctrl+s"))
	_, cmd := send(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	boards, err := store.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards failed: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("got %d boards, expected 1", len(boards))
	}
	if !strings.HasPrefix(boards[0].Name, "life-") || boards[0].Population != 1 {
		t.Errorf("board = %+v", boards[0])
	}

	b, err := store.LoadBoard(boards[0].Name)
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if len(b.Cells) != 1 || b.Cells[0] != automaton.C(0, 0) || b.Policy != "tracked" {
		t.Errorf("loaded board = %+v", b)
	}
}

func TestModelQuitRecordsSession(t *testing.T) {
	store := openTestStore(t)
	m, game := newTestModel(t, store)
	game.Engine().Stamp([]automaton.Coord{automaton.C(-1, 0), automaton.C(0, 0), automaton.C(1, 0)}, automaton.C(0, 0))

	m, _ = send(t, m, keyMsg("n"))
	m, _ = send(t, m, TickMsg(time.Now()))
	if game.State().Generation != 1 {
		t.Fatalf("Generation = %d, expected 1", game.State().Generation)
	}

	m, cmd := send(t, m, keyMsg("q"))
	if cmd == nil || !m.Done() || m.Exit() != ExitQuit {
		t.Fatalf("q should end the session with ExitQuit (done=%v exit=%v)", m.Done(), m.Exit())
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	sessions, err := store.RecentSessions("life", 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, expected 1", len(sessions))
	}
	if sessions[0].Generations != 1 || sessions[0].PeakPopulation != 3 || sessions[0].FinalPopulation != 3 {
		t.Errorf("session = %+v", sessions[0])
	}
}

func TestModelBackSkipsEmptySession(t *testing.T) {
	store := openTestStore(t)
	m, _ := newTestModel(t, store)

	m, _ = send(t, m, keyMsg("esc"))
	if !m.Done() || m.Exit() != ExitBack {
		t.Fatalf("esc should end the session with ExitBack")
	}

	sessions, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, expected none for an unplayed board", len(sessions))
	}
}

func TestModelWithBoard(t *testing.T) {
	board := registry.BoardState{
		Policy:     automaton.Tracked,
		Generation: 7,
		Cells:      []automaton.Coord{automaton.C(0, 0), automaton.C(1, 0), automaton.C(2, 0)},
	}
	_, game := newTestModel(t, nil, WithBoard(board))

	st := game.State()
	if st.Generation != 7 || st.Population != 3 {
		t.Errorf("state = %+v, expected generation 7 and population 3", st)
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, game := newTestModel(t, nil)
	game.Engine().SetCell(3, 3, true)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !game.Engine().IsAlive(3, 3) {
		t.Error("resize should keep the board")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	view := m.View()
	if !strings.Contains(view, "PAUSED") || !strings.Contains(view, "Gen: 0") {
		t.Errorf("View missing HUD:\n%s", view)
	}
}

func TestModelSaveWithoutStore(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = send(t, m, keyMsg("ctrl+s"))
	m, _ = send(t, m, TickMsg(time.Now()))
	if !strings.Contains(m.View(), "Save failed") {
		t.Error("footer should report the failed save")
	}

	_, err := SaveBoard(nil, "life", registry.BoardState{}, time.Now())
	if !errors.Is(err, ErrNoStore) {
		t.Errorf("SaveBoard(nil) error = %v, expected ErrNoStore", err)
	}
}

func TestSaveBoardName(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	name, err := SaveBoard(store, "life_unbounded", registry.BoardState{Policy: automaton.Unbounded}, at)
	if err != nil {
		t.Fatalf("SaveBoard failed: %v", err)
	}
	if name != "life_unbounded-20240309-140506" {
		t.Errorf("name = %q", name)
	}

	b, err := store.LoadBoard(name)
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if b.Policy != "unbounded" || len(b.Cells) != 0 {
		t.Errorf("board = %+v", b)
	}
}
