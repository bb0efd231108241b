package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPrimary},
		{"z", runeKey('z'), core.ActionRotateCCW},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey('b'), core.ActionBack},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
			if quit {
				t.Errorf("MapKey(%q) reported quit", tt.msg.String())
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		if !quit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, %v; expected quit", msg.String(), action, quit)
		}
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{runeKey('a'), runeKey('z'), runeKey('a'), runeKey('x')} {
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatal("unexpected quit")
		}
	}

	want := []core.Action{core.ActionLeft, core.ActionRotateCCW, core.ActionLeft}
	if len(frame.Actions) != len(want) {
		t.Fatalf("frame = %v, expected %v", frame.Actions, want)
	}
	for i := range want {
		if frame.Actions[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, frame.Actions[i], want[i])
		}
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be queued for the game")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
