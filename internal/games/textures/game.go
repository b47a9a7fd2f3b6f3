// Package textures implements the textured sprite bootstrap: one image
// loaded at startup, drawn centred in the arena and moved with the arrow
// keys.
package textures

import (
	"fmt"
	"image"

	"github.com/vovakirdan/course-arcade/internal/assets"
	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
	"github.com/vovakirdan/course-arcade/internal/registry"
)

func init() {
	registry.Register("textures", func() registry.Game {
		return New()
	})
}

// Game draws a single textured sprite.
type Game struct {
	opts    registry.Options
	cfg     config.TexturesConfig
	texture image.Image // Scaled to the sprite size; nil until Load

	player core.Box
	paused bool
	debug  bool
}

// New creates the game with the built-in config. The texture is read by Load.
func New() *Game {
	return &Game{cfg: config.DefaultTexturesConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "textures"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Basic Textures"
}

// Lesson names the course week the game comes from.
func (g *Game) Lesson() string {
	return "Weeks 9-11: loading and drawing a texture"
}

// Configure stores CLI options for Load.
func (g *Game) Configure(opts registry.Options) {
	g.opts = opts
}

// Load reads the config and decodes the player texture. A missing or
// broken texture is an error: there is nothing to draw without it.
func (g *Game) Load() error {
	cfg, err := config.LoadTextures(g.opts.ConfigPath)
	if err != nil {
		return err
	}

	img, err := assets.LoadTexture(g.opts.AssetDir, cfg.Player.Texture)
	if err != nil {
		return fmt.Errorf("textures: load player texture: %w", err)
	}

	g.cfg = cfg
	g.texture = assets.Scale(img, int(cfg.Player.Width), int(cfg.Player.Height))
	return nil
}

// Reload re-reads the config and texture.
func (g *Game) Reload() error {
	return g.Load()
}

// Reset puts the sprite back in the middle of the arena.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.spawn()
	g.paused = false
}

func (g *Game) spawn() {
	center := core.V(g.cfg.Arena.Width/2, g.cfg.Arena.Height/2)
	g.player = core.BoxAt(center, g.cfg.Player.Width, g.cfg.Player.Height)
}

// Step moves the sprite by dt seconds of held input.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionConfirm) {
		g.spawn()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	d := in.Direction().Normalize().Scale(g.cfg.Player.Speed * dt)
	g.player.X = core.ClampF(g.player.X+d.X, 0, g.cfg.Arena.Width-g.player.W)
	g.player.Y = core.ClampF(g.player.Y+d.Y, 0, g.cfg.Arena.Height-g.player.H)

	return core.StepResult{State: g.State()}
}

// Scene draws the sprite over an empty arena.
func (g *Game) Scene() core.Scene {
	sc := core.NewScene(g.cfg.Arena.Width, g.cfg.Arena.Height)
	sc.Add(core.Sprite(g.player, g.texture))
	if g.debug {
		sc.Add(core.StrokeRect(g.player, core.ColorBrightMagenta))
	}

	sc.HUD = []string{
		g.Title(),
		"WASD/arrows move  Space recenter  R reset",
	}
	if g.debug {
		c := g.player.Center()
		sc.HUD = append(sc.HUD, fmt.Sprintf("DEBUG: sprite at (%.0f, %.0f)", c.X, c.Y))
	}
	if g.paused {
		sc.Banner = []string{"PAUSED"}
	}
	return sc
}

// State returns the current game state. There is nothing to win or lose.
func (g *Game) State() core.GameState {
	return core.NewGameState(0, core.StatusPlaying, g.paused)
}
