package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

// cursorTo moves the session menu cursor onto gameID.
func cursorTo(t *testing.T, m SessionModel, gameID string) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == gameID {
			m.menu.cursor = i
			return m
		}
	}
	t.Fatalf("%s not in menu", gameID)
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, testConfig(), "bob")
	m = cursorTo(t, m, "fake")

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	g := lastFake
	if g.resets != 1 {
		t.Fatalf("game resets = %d", g.resets)
	}

	g.state = core.GameState{Score: 90, GameOver: true}
	m, _ = sessionSend(t, m, TickMsg{})
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	scores, err := store.TopScores("fake", 1)
	if err != nil || len(scores) != 1 || scores[0].Player != "bob" {
		t.Fatalf("scores = %+v, err = %v", scores, err)
	}

	// The rebuilt menu shows the new best
	if !strings.Contains(m.View(), "best 90") {
		t.Error("menu should show the stored best score")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob")

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if cmd != nil {
		t.Error("switching screens should not quit the session")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionInvadersSelector(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob")
	m.menu.items = append(m.menu.items, MenuItem{GameID: "invaders", Title: "Invaders"})
	m = cursorTo(t, m, "invaders")

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenInvadersMode {
		t.Fatalf("screen = %v, expected invaders mode", m.screen)
	}
	if !strings.Contains(m.View(), "Classic") {
		t.Error("selector should list the classic variant")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob")

	m, cmd := sessionSend(t, m, runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}
