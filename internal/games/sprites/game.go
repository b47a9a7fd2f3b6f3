package sprites

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

func init() {
	registry.Register("sprites", func() registry.Game {
		return New()
	})
}

// Game implements the sprite and collision demo.
type Game struct {
	opts    registry.Options
	cfg     config.SpritesConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	state State
	debug bool // Hitbox overlay, kept across resets
}

// New creates a game using the built-in level until Load is called.
func New() *Game {
	return &Game{cfg: config.DefaultSpritesConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sprites"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sprites + Collisions"
}

// Lesson names the course week the game comes from.
func (g *Game) Lesson() string {
	return "Week 4: sprites, collisions and hazards"
}

// Configure stores CLI options for Load.
func (g *Game) Configure(opts registry.Options) {
	g.opts = opts
}

// Load reads the level, applying the difficulty preset.
func (g *Game) Load() error {
	preset, ok := config.ParsePreset(g.opts.Difficulty)
	if !ok {
		return fmt.Errorf("sprites: unknown difficulty %q", g.opts.Difficulty)
	}

	cfg, err := config.LoadSprites(g.opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplySpritesPreset(&cfg, preset)

	g.cfg = cfg
	return nil
}

// Reload re-reads the level. The running round is unaffected until Reset.
func (g *Game) Reload() error {
	return g.Load()
}

// Reset rebuilds the round from the level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = NewState(g.cfg)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.NewGameState(g.score(), g.state.Status, g.state.Paused)
}

func (g *Game) tuning() Tuning {
	return Tuning{
		Invincibility:  g.cfg.Player.Invincibility,
		KnockbackSpeed: g.cfg.Player.KnockbackSpeed,
		KnockbackTime:  g.cfg.Player.KnockbackTime,
		ShakeDuration:  g.cfg.Shake.Duration,
	}
}

// score is coin points, plus a bonus per remaining health point once won.
func (g *Game) score() int {
	s := g.state.Collected * g.cfg.Scoring.CoinPoints
	if g.state.Status == core.StatusWon {
		s += g.state.Player.Health * g.cfg.Scoring.HealthBonus
	}
	return s
}

// Step advances the round by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.state.Status != core.StatusPlaying {
		g.state.Shake.Tick(dt)
		if in.Has(core.ActionConfirm) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}

	events := Update(&g.state, in, dt, g.tuning())
	return core.StepResult{State: g.State(), Events: events}
}
