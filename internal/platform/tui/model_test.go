package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/course-arcade/internal/audio"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

// fakeGame records what the platform feeds it and returns scripted results.
type fakeGame struct {
	resets    int
	reloads   int
	reloadErr error
	dts       []float64
	inputs    []core.InputFrame
	next      core.StepResult
	state     core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Reload() error {
	g.reloads++
	return g.reloadErr
}

func (g *fakeGame) Scene() core.Scene {
	sc := core.NewScene(10, 10)
	sc.HUD = []string{"fake hud"}
	return sc
}

func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.dts = append(g.dts, dt)
	g.inputs = append(g.inputs, in.Clone())
	res := g.next
	g.state = res.State
	g.next = core.StepResult{State: g.state}
	return res
}

// recordingAudio remembers played events.
type recordingAudio struct {
	audio.Nop
	played []core.EventKind
}

func (r *recordingAudio) Play(k core.EventKind) { r.played = append(r.played, k) }

func newTestModel(t *testing.T, g *fakeGame, withStore bool) (GameModel, *storage.Store, *recordingAudio) {
	t.Helper()
	sfx := &recordingAudio{}
	svc := Services{Audio: sfx}

	var store *storage.Store
	if withStore {
		var err error
		store, err = storage.Open(filepath.Join(t.TempDir(), "scores.db"))
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		svc.Store = store
	}

	m := NewGameModel(g, svc, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	return m, store, sfx
}

func update(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickDeltaIsClamped(t *testing.T) {
	g := &fakeGame{}
	m, _, _ := newTestModel(t, g, false)

	t0 := time.Unix(1000, 0)
	m, _ = update(m, TickMsg(t0))
	m, _ = update(m, TickMsg(t0.Add(16*time.Millisecond)))
	m, _ = update(m, TickMsg(t0.Add(5*time.Second)))
	_, _ = update(m, TickMsg(t0.Add(4*time.Second))) // Clock went backwards

	expected := []float64{0, 0.016, maxFrameDelta, 0}
	if len(g.dts) != len(expected) {
		t.Fatalf("steps = %d, expected %d", len(g.dts), len(expected))
	}
	for i, want := range expected {
		if diff := g.dts[i] - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("dt[%d] = %v, expected %v", i, g.dts[i], want)
		}
	}
}

func TestKeyPressBecomesHeldDirection(t *testing.T) {
	g := &fakeGame{}
	m, _, _ := newTestModel(t, g, false)

	m, _ = update(m, keyMsg("d"))
	m, _ = update(m, TickMsg(time.Now()))
	m, _ = update(m, TickMsg(time.Now().Add(50*time.Millisecond)))
	_, _ = update(m, TickMsg(time.Now().Add(time.Second)))

	if !g.inputs[0].Has(core.ActionRight) {
		t.Error("first frame should carry the press")
	}
	if g.inputs[1].Has(core.ActionRight) || !g.inputs[1].Held(core.ActionRight) {
		t.Error("second frame should carry a hold, not a press")
	}
	if g.inputs[2].Held(core.ActionRight) {
		t.Error("hold should expire without repeats")
	}
}

func TestRestartKeyResets(t *testing.T) {
	g := &fakeGame{}
	m, _, _ := newTestModel(t, g, false)
	before := g.resets

	m, _ = update(m, keyMsg("r"))
	_, _ = update(m, TickMsg(time.Now()))

	if g.resets != before+1 {
		t.Errorf("resets = %d, expected %d", g.resets, before+1)
	}
	if len(g.dts) != 0 {
		t.Error("the restart tick should not step the game")
	}
}

func TestFinishedRoundSavedOnce(t *testing.T) {
	g := &fakeGame{}
	m, store, sfx := newTestModel(t, g, true)

	g.next = core.StepResult{
		State:  core.NewGameState(120, core.StatusWon, false),
		Events: []core.Event{{Kind: core.EventVictory}},
	}
	now := time.Now()
	for i := 0; i < 5; i++ {
		m, _ = update(m, TickMsg(now.Add(time.Duration(i)*time.Millisecond)))
	}

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 120 || scores[0].Outcome != storage.OutcomeWon {
		t.Errorf("scores = %+v, expected one won 120", scores)
	}
	if len(sfx.played) != 1 || sfx.played[0] != core.EventVictory {
		t.Errorf("played = %v, expected victory", sfx.played)
	}
}

func TestRunOverEventSavesScore(t *testing.T) {
	g := &fakeGame{}
	m, store, _ := newTestModel(t, g, true)

	g.next = core.StepResult{
		State:  core.NewGameState(0, core.StatusPlaying, false),
		Events: []core.Event{{Kind: core.EventMiss}, {Kind: core.EventRunOver, Value: 9}},
	}
	_, _ = update(m, TickMsg(time.Now()))

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 9 || scores[0].Outcome != storage.OutcomeRunOver {
		t.Errorf("scores = %+v, expected one run-over 9", scores)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	g := &fakeGame{}
	m, store, _ := newTestModel(t, g, true)

	g.next = core.StepResult{State: core.NewGameState(0, core.StatusLost, false)}
	_, _ = update(m, TickMsg(time.Now()))

	if n, _ := store.HighScore("fake"); n != 0 {
		t.Error("a zero score should not be recorded")
	}
}

func TestMuteToggles(t *testing.T) {
	g := &fakeGame{}
	m, _, sfx := newTestModel(t, g, false)

	m, _ = update(m, keyMsg("m"))
	if !sfx.Muted() {
		t.Error("m should mute")
	}
	_, _ = update(m, keyMsg("m"))
	if sfx.Muted() {
		t.Error("second m should unmute")
	}
}

func TestConfigChangeReloadsAndResets(t *testing.T) {
	g := &fakeGame{}
	m, _, _ := newTestModel(t, g, false)
	resets := g.resets

	m, _ = update(m, configChangedMsg{path: "sprites.yaml"})
	if g.reloads != 1 || g.resets != resets+1 {
		t.Errorf("reloads %d resets %d, expected a reload and a reset", g.reloads, g.resets)
	}

	g.reloadErr = errors.New("bad yaml")
	_, _ = update(m, configChangedMsg{path: "sprites.yaml"})
	if g.reloads != 2 || g.resets != resets+1 {
		t.Error("a failed reload must keep the running round")
	}
}

func TestQuitAndBack(t *testing.T) {
	g := &fakeGame{}
	m, _, _ := newTestModel(t, g, false)

	back, cmd := update(m, keyMsg("esc"))
	if !back.BackToMenu() || cmd != nil {
		t.Error("esc inside a session should go back without quitting")
	}

	m.exitOnBack = true
	_, cmd = update(m, keyMsg("esc"))
	if cmd == nil {
		t.Fatal("standalone esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit command")
	}

	quit, cmd := update(m, keyMsg("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestViewShowsSceneAndHelp(t *testing.T) {
	g := &fakeGame{}
	m, _, _ := newTestModel(t, g, false)

	view := m.View()
	if !strings.Contains(view, "fake hud") {
		t.Error("view should contain the scene HUD")
	}
	if !strings.Contains(view, "pause") {
		t.Error("view should contain the help bar")
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
