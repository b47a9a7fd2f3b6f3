package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

func newTestSession() SessionModel {
	svc := Services{Logger: log.New(io.Discard)}
	return NewSessionModel(svc, registry.Options{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()
	for i := 0; i < indexOf(m.menu, "menu-a"); i++ {
		m = sessionUpdate(t, m, keyMsg("j"))
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("selecting a game should start it")
	}
	if m.quitting {
		t.Fatal("starting a game must not end the session")
	}

	m = sessionUpdate(t, m, keyMsg("esc"))
	if m.gameModel != nil {
		t.Fatal("back should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession()

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m = sessionUpdate(t, m, keyMsg("b"))
	if m.board != nil || m.quitting {
		t.Fatal("b should return to the menu")
	}
}

func TestSessionUnknownGameStaysInMenu(t *testing.T) {
	m := newTestSession()
	m.menu.items = append(m.menu.items, MenuItem{GameID: "missing", Title: "Missing"})
	m.menu.cursor = len(m.menu.items) - 1

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel != nil || m.quitting {
		t.Fatal("unknown game should keep the menu open")
	}
	if m.menu.message == "" {
		t.Error("menu should explain why the game did not start")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()
	next, cmd := m.Update(keyMsg("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := newTestSession()
	m = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %+v, expected 120x40", m.config)
	}
}
