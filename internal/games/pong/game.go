// Package pong implements PongSpire, a single-paddle Pong: keep the ball
// in play with the paddle at the bottom and score each time it reaches the
// top of the arena.
package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// State is one run of PongSpire. It never ends: running out of lives
// reports the run and starts a new one.
type State struct {
	Ball    core.Box
	Dir     core.Vec2 // Per-axis direction, scaled by the current speed
	Paddle  core.Box
	Score   int
	Lives   int
	Elapsed float64 // Seconds played in this run
	Paused  bool
}

// Game implements the single-paddle Pong logic.
type Game struct {
	opts       registry.Options
	cfg        config.PongConfig
	difficulty *config.DifficultyManager

	state State
	debug bool
}

// New creates a new Pong game instance using the built-in config.
func New() *Game {
	cfg := config.DefaultPongConfig()
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "PongSpire"
}

// Lesson names the course week the game comes from.
func (g *Game) Lesson() string {
	return "Week 11: single-paddle Pong"
}

// Configure stores CLI options for Load.
func (g *Game) Configure(opts registry.Options) {
	g.opts = opts
}

// Load reads the config and applies the difficulty preset.
func (g *Game) Load() error {
	preset, ok := config.ParsePreset(g.opts.Difficulty)
	if !ok {
		return fmt.Errorf("pong: unknown difficulty %q", g.opts.Difficulty)
	}

	cfg, err := config.LoadPong(g.opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyPongPreset(&cfg, preset)

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Reload re-reads the config. The running rally is unaffected until Reset.
func (g *Game) Reload() error {
	return g.Load()
}

// Reset starts a fresh run.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.state = NewState(g.cfg)
}

// NewState builds the start of a run from the config.
func NewState(cfg config.PongConfig) State {
	b, p := cfg.Ball, cfg.Paddle
	return State{
		Ball:   core.NewBox(b.Start.X, b.Start.Y, b.Size, b.Size),
		Dir:    core.V(b.Direction.X, b.Direction.Y),
		Paddle: core.NewBox(p.Start.X, p.Start.Y, p.Width, p.Height),
		Lives:  cfg.Gameplay.Lives,
	}
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}

	if g.state.Paused {
		return core.StepResult{State: g.State()}
	}

	s := &g.state
	s.Elapsed += dt

	// Paddle moves only while held, clamped to the arena
	s.Paddle.X += in.Direction().X * g.cfg.Paddle.Speed * dt
	s.Paddle.X = core.ClampF(s.Paddle.X, 0, g.cfg.Arena.Width-s.Paddle.W)

	speed := g.difficulty.Speed(g.cfg.Ball.Speed, s.Score, s.Elapsed)

	// Short sub-steps keep a fast ball from skipping over the paddle
	steps := subSteps(s.Dir.Scale(speed*dt), min(s.Ball.W, s.Ball.H, s.Paddle.H))
	stepLen := speed * dt / float64(steps)

	var events []core.Event
	for range steps {
		s.Ball = s.Ball.Translate(s.Dir.Scale(stepLen))
		hit, served := g.updateBall()
		events = append(events, hit...)
		if served {
			break // A fresh serve waits for the next frame
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// subSteps splits a move so no piece is longer than stride on either axis.
func subSteps(move core.Vec2, stride float64) int {
	far := max(math.Abs(move.X), math.Abs(move.Y))
	if stride <= 0 || far <= stride {
		return 1
	}
	return int(math.Ceil(far / stride))
}

// updateBall answers the ball's contacts with the arena edges and the
// paddle, reporting whether a miss put the ball back on its serve spot.
// Reflections set the direction sign instead of flipping it, so a ball
// still overlapping an edge next frame keeps heading away from it.
func (g *Game) updateBall() (events []core.Event, served bool) {
	s := &g.state
	arena := g.cfg.Arena

	// Side walls
	if s.Ball.X < 0 {
		s.Ball.X = 0
		s.Dir.X = math.Abs(s.Dir.X)
	}
	if s.Ball.Right() > arena.Width {
		s.Ball.X = arena.Width - s.Ball.W
		s.Dir.X = -math.Abs(s.Dir.X)
	}

	// Top edge scores
	if s.Ball.Y < 0 {
		s.Ball.Y = 0
		s.Dir.Y = math.Abs(s.Dir.Y)
		s.Score++
		events = append(events, core.Event{Kind: core.EventScore, Value: s.Score})
	}

	// Paddle only catches a falling ball
	if s.Dir.Y > 0 && s.Ball.Intersects(s.Paddle) {
		s.Ball.Y = s.Paddle.Y - s.Ball.H
		s.Dir.Y = -math.Abs(s.Dir.Y)
		events = append(events, core.Event{Kind: core.EventBounce})
	}

	// Missed: the whole ball is below the arena
	if s.Ball.Y > arena.Height {
		serve := g.cfg.Ball.Serve
		s.Ball.X, s.Ball.Y = serve.X, serve.Y
		s.Lives--
		events = append(events, core.Event{Kind: core.EventMiss, Value: s.Lives})

		if s.Lives < 1 {
			events = append(events, core.Event{Kind: core.EventRunOver, Value: s.Score})
			s.Score = 0
			s.Lives = g.cfg.Gameplay.Lives
			s.Elapsed = 0
		}
		served = true
	}

	return events, served
}

// Scene draws the arena, paddle, ball and score line.
func (g *Game) Scene() core.Scene {
	s := &g.state
	sc := core.NewScene(g.cfg.Arena.Width, g.cfg.Arena.Height)

	paddle := core.FillRect(s.Paddle, core.ColorWhite)
	paddle.Rune = PaddleChar
	ball := core.Circle(s.Ball, core.ColorBrightWhite)
	ball.Rune = BallChar
	sc.Add(paddle, ball)

	if g.debug {
		sc.Add(core.StrokeRect(s.Ball, core.ColorBrightMagenta), core.StrokeRect(s.Paddle, core.ColorBrightMagenta))
	}

	sc.HUD = append(sc.HUD, fmt.Sprintf("Score:%d Lives:%d", s.Score, s.Lives))
	if g.debug {
		speed := g.difficulty.Speed(g.cfg.Ball.Speed, s.Score, s.Elapsed)
		sc.HUD = append(sc.HUD, fmt.Sprintf("DEBUG: speed %.0f level %.2f", speed, g.difficulty.Level(s.Score, s.Elapsed)))
	}

	if s.Paused {
		sc.Banner = []string{"PAUSED", "Press P to resume"}
	}

	return sc
}

// State returns the current game state. A run never ends in a win or
// loss, so the status is always playing.
func (g *Game) State() core.GameState {
	return core.NewGameState(g.state.Score, core.StatusPlaying, g.state.Paused)
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
