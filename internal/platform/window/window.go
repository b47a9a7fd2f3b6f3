// Package window runs a game in a native window with Ebitengine.
// It consumes the same Scene and InputFrame the terminal platform does,
// but reads real key state instead of guessing it from key repeats.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/course-arcade/internal/audio"
	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
	"github.com/vovakirdan/course-arcade/internal/storage"
)

// Largest window picked automatically when no scale is given.
const (
	autoMaxW = 1280
	autoMaxH = 720
)

// noticeTicks is how many frames a status notice stays visible.
const noticeTicks = 120

// Services mirror the terminal platform's collaborators. Any may be nil.
type Services struct {
	Store   *storage.Store
	Audio   audio.Player
	Watcher *config.Watcher
	Logger  *log.Logger
}

// Options control the window itself.
type Options struct {
	Scale    float64 // Window size relative to the world size; 0 fits the world into 1280x720
	TickRate int     // Updates per second
	Seed     int64   // 0 picks a fresh seed on every reset
}

// runner adapts a registry.Game to ebiten.Game.
type runner struct {
	game       registry.Game
	svc        Services
	config     core.RuntimeConfig
	randomSeed bool
	state      core.GameState
	scoreSaved bool

	notice      string
	noticeTicks int

	canvas *canvas // Created on the first Draw, once the GPU is up
}

func newRunner(game registry.Game, svc Services, opts Options) *runner {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if svc.Audio == nil {
		svc.Audio = &audio.Nop{}
	}
	if svc.Logger == nil {
		svc.Logger = log.Default()
	}

	r := &runner{
		game:       game,
		svc:        svc,
		randomSeed: opts.Seed == 0,
		config: core.RuntimeConfig{
			ScreenW:  core.DefaultConfig().ScreenW,
			ScreenH:  core.DefaultConfig().ScreenH,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
	}
	r.restart()
	return r
}

// Run opens the window and blocks until the player quits.
func Run(game registry.Game, svc Services, opts Options) error {
	r := newRunner(game, svc, opts)
	sc := game.Scene()

	scale := opts.Scale
	if scale <= 0 {
		scale = autoScale(sc.Width, sc.Height)
	}
	w, h := windowSize(sc.Width, sc.Height, scale)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(r.config.TickRate)

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// autoScale shrinks large worlds to fit autoMaxW x autoMaxH and never
// enlarges small ones.
func autoScale(worldW, worldH float64) float64 {
	if worldW <= 0 || worldH <= 0 {
		return 1
	}
	return min(1, autoMaxW/worldW, autoMaxH/worldH)
}

// windowSize scales the world to whole pixels, never below 1x1.
func windowSize(worldW, worldH, scale float64) (int, int) {
	return max(int(worldW*scale), 1), max(int(worldH*scale), 1)
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	r.pollWatcher()
	return r.advance(readFrame(), 1/float64(ebiten.TPS()))
}

// advance runs one frame of platform bookkeeping around Game.Step.
// It returns ebiten.Termination when the player leaves.
func (r *runner) advance(in core.InputFrame, dt float64) error {
	if r.noticeTicks > 0 {
		r.noticeTicks--
	}

	switch {
	case in.Has(core.ActionQuit), in.Has(core.ActionBack):
		return ebiten.Termination
	case in.Has(core.ActionRestart):
		r.restart()
		return nil
	}

	if in.Has(core.ActionMute) {
		r.svc.Audio.SetMuted(!r.svc.Audio.Muted())
		if r.svc.Audio.Muted() {
			r.flash("sound off")
		} else {
			r.flash("sound on")
		}
	}

	result := r.game.Step(in, dt)
	r.state = result.State

	for _, e := range result.Events {
		r.svc.Audio.Play(e.Kind)
		if e.Kind == core.EventRunOver {
			r.saveScore(e.Value, storage.OutcomeRunOver)
		}
	}

	switch {
	case r.state.GameOver && !r.scoreSaved:
		outcome := storage.OutcomeLost
		if r.state.Status == core.StatusWon {
			outcome = storage.OutcomeWon
		}
		r.saveScore(r.state.Score, outcome)
		r.scoreSaved = true
	case !r.state.GameOver:
		r.scoreSaved = false
	}

	return nil
}

// pollWatcher applies pending config changes without blocking the frame.
func (r *runner) pollWatcher() {
	w := r.svc.Watcher
	if w == nil {
		return
	}

	select {
	case path := <-w.Events:
		r.reload(path)
	case err := <-w.Errors:
		r.svc.Logger.Warn("config watcher", "error", err)
	default:
	}
}

func (r *runner) reload(path string) {
	rl, ok := r.game.(registry.Reloader)
	if !ok {
		return
	}

	if err := rl.Reload(); err != nil {
		r.svc.Logger.Warn("config reload failed", "game", r.game.ID(), "path", path, "error", err)
		r.flash("config error, keeping previous settings")
		return
	}

	r.svc.Logger.Info("config reloaded", "game", r.game.ID(), "path", path)
	r.restart()
	r.flash("config reloaded")
}

func (r *runner) restart() {
	if r.randomSeed {
		r.config.Seed = time.Now().UnixNano()
	}
	r.game.Reset(r.config)
	r.state = r.game.State()
	r.scoreSaved = false
}

func (r *runner) saveScore(score int, outcome string) {
	if r.svc.Store == nil || score <= 0 {
		return
	}
	if _, err := r.svc.Store.SaveScore(r.game.ID(), score, outcome); err != nil {
		r.svc.Logger.Warn("could not save score", "game", r.game.ID(), "error", err)
	}
}

func (r *runner) flash(text string) {
	r.notice = text
	r.noticeTicks = noticeTicks
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	notice := ""
	if r.noticeTicks > 0 {
		notice = r.notice
	}
	if r.canvas == nil {
		r.canvas = newCanvas()
	}
	r.canvas.draw(screen, r.game.Scene(), notice)
}

// Layout implements ebiten.Game. The logical screen is the world itself;
// Ebitengine scales it to whatever the window is.
func (r *runner) Layout(_, _ int) (int, int) {
	sc := r.game.Scene()
	return max(int(sc.Width), 1), max(int(sc.Height), 1)
}
