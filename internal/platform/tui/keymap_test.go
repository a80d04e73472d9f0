package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// keyMsg builds a key message for a rune or named key.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{" ", core.ActionPause, false},
		{"p", core.ActionPause, false},
		{"n", core.ActionStep, false},
		{".", core.ActionStep, false},
		{"up", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"enter", core.ActionToggleCell, false},
		{"x", core.ActionToggleCell, false},
		{"c", core.ActionClear, false},
		{"r", core.ActionRandomize, false},
		{"w", core.ActionPanUp, false},
		{"D", core.ActionPanRight, false},
		{"shift+right", core.ActionPanRight, false},
		{"0", core.ActionRecenter, false},
		{"+", core.ActionFaster, false},
		{"-", core.ActionSlower, false},
		{"ctrl+s", core.ActionSave, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"z", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("n"), &frame) {
		t.Error("n should not quit")
	}
	if km.MapKeyToFrame(keyMsg("z"), &frame) {
		t.Error("unbound key should not quit")
	}
	if !frame.Has(core.ActionStep) || len(frame.Actions) != 1 {
		t.Errorf("frame = %v, expected only Step", frame.Actions)
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should be used")
	}
	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 10, Y: 5}) {
		t.Errorf("Clicks = %v", frame.Clicks)
	}

	release := tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	right := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouseToFrame(release, &frame) || km.MapMouseToFrame(right, &frame) {
		t.Error("only left presses should be used")
	}
	if len(frame.Clicks) != 1 {
		t.Errorf("Clicks = %v, expected one", frame.Clicks)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionHistory},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.action)
		}
	}
}
