package window

import (
	"errors"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/course-arcade/internal/audio"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

// stubGame replays a scripted StepResult and counts resets.
type stubGame struct {
	resets int
	steps  int
	next   core.StepResult
	lastDt float64
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.next = core.StepResult{}
}

func (g *stubGame) Step(_ core.InputFrame, dt float64) core.StepResult {
	g.steps++
	g.lastDt = dt
	return g.next
}

func (g *stubGame) Scene() core.Scene { return core.NewScene(1920, 1080) }
func (g *stubGame) State() core.GameState { return g.next.State }

type countingAudio struct {
	audio.Nop
	played []core.EventKind
}

func (a *countingAudio) Play(kind core.EventKind) {
	a.played = append(a.played, kind)
}

func newTestRunner(t *testing.T) (*runner, *stubGame, *storage.Store, *countingAudio) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{}
	sfx := &countingAudio{}
	r := newRunner(g, Services{Store: store, Audio: sfx, Logger: log.New(io.Discard)}, Options{Seed: 7})
	return r, g, store, sfx
}

func keys(ks ...ebiten.Key) keyState {
	return func(k ebiten.Key) bool {
		for _, want := range ks {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestBuildFrame(t *testing.T) {
	f := buildFrame(keys(ebiten.KeyArrowLeft, ebiten.KeyW), keys(ebiten.KeyP))

	if !f.Holding[core.ActionLeft] || !f.Holding[core.ActionUp] {
		t.Errorf("holding = %v, expected left and up", f.Holding)
	}
	if f.Has(core.ActionLeft) {
		t.Error("a held key is not a fresh press")
	}
	if !f.Has(core.ActionPause) {
		t.Error("P should press pause")
	}
	if d := f.Direction(); d != core.V(-1, -1) {
		t.Errorf("direction = %v, expected (-1,-1)", d)
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		in   core.Color
		want any
	}{
		{core.ColorOrange, colornames.Orange},
		{core.ColorBrightYellow, colornames.Yellow},
		{core.Color(200), colornames.Lightgray},
	}
	for _, tt := range tests {
		if got := colorOf(tt.in); got != tt.want {
			t.Errorf("colorOf(%d) = %v, expected %v", tt.in, got, tt.want)
		}
	}

	if backgroundOf(core.ColorDefault) != backgroundColor {
		t.Error("default background should stay dark")
	}
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(1920, 1080, 0.5)
	if w != 960 || h != 540 {
		t.Errorf("size = %dx%d, expected 960x540", w, h)
	}
	w, h = windowSize(1920, 1080, 0)
	if w != 1 || h != 1 {
		t.Errorf("size = %dx%d, expected 1x1 floor", w, h)
	}
}

func TestAutoScale(t *testing.T) {
	tests := []struct {
		w, h, want float64
	}{
		{960, 540, 1},
		{1920, 1080, 2.0 / 3},
		{2560, 720, 0.5},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := autoScale(tt.w, tt.h); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("autoScale(%v, %v) = %v, expected %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestAdvanceQuitAndBackTerminate(t *testing.T) {
	for _, a := range []core.Action{core.ActionQuit, core.ActionBack} {
		r, g, _, _ := newTestRunner(t)
		in := core.NewInputFrame()
		in.Set(a)
		if err := r.advance(in, 1.0/60); !errors.Is(err, ebiten.Termination) {
			t.Errorf("%v: err = %v, expected termination", a, err)
		}
		if g.steps != 0 {
			t.Errorf("%v: game stepped after leaving", a)
		}
	}
}

func TestAdvanceRestartResets(t *testing.T) {
	r, g, _, _ := newTestRunner(t)
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)

	if err := r.advance(in, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if g.resets != 2 || g.steps != 0 {
		t.Errorf("resets = %d steps = %d, expected 2 and 0", g.resets, g.steps)
	}
}

func TestAdvanceSavesFinishedRoundOnce(t *testing.T) {
	r, g, store, sfx := newTestRunner(t)
	g.next = core.StepResult{
		State:  core.NewGameState(170, core.StatusWon, false),
		Events: []core.Event{{Kind: core.EventVictory}},
	}

	for i := 0; i < 3; i++ {
		if err := r.advance(core.NewInputFrame(), 1.0/60); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 170 || scores[0].Outcome != storage.OutcomeWon {
		t.Errorf("scores = %+v, expected one won 170", scores)
	}
	if len(sfx.played) != 3 || g.lastDt != 1.0/60 {
		t.Errorf("played = %v dt = %v", sfx.played, g.lastDt)
	}
}

func TestAdvanceRecordsRunOver(t *testing.T) {
	r, g, store, _ := newTestRunner(t)
	g.next = core.StepResult{
		State:  core.NewGameState(0, core.StatusPlaying, false),
		Events: []core.Event{{Kind: core.EventRunOver, Value: 42}},
	}

	if err := r.advance(core.NewInputFrame(), 1.0/60); err != nil {
		t.Fatal(err)
	}

	best, err := store.HighScore("stub")
	if err != nil || best != 42 {
		t.Errorf("best = %d (%v), expected 42", best, err)
	}
}

func TestAdvanceMuteToggles(t *testing.T) {
	r, _, _, sfx := newTestRunner(t)
	in := core.NewInputFrame()
	in.Set(core.ActionMute)

	if err := r.advance(in, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if !sfx.Muted() || r.notice != "sound off" || r.noticeTicks != noticeTicks {
		t.Errorf("muted = %v notice = %q", sfx.Muted(), r.notice)
	}
}
