package config

import (
	"errors"
	"fmt"
)

// fieldErrs collects one error per invalid field.
type fieldErrs []error

func (f *fieldErrs) positive(name string, v float64) {
	if v <= 0 {
		*f = append(*f, fmt.Errorf("%s must be positive, got %v", name, v))
	}
}

func (f *fieldErrs) nonNegative(name string, v float64) {
	if v < 0 {
		*f = append(*f, fmt.Errorf("%s must not be negative, got %v", name, v))
	}
}

func (f *fieldErrs) check(ok bool, format string, args ...any) {
	if !ok {
		*f = append(*f, fmt.Errorf(format, args...))
	}
}

func (f fieldErrs) err() error {
	return errors.Join(f...)
}

func (r RectSpec) contains(p Point) bool {
	return p.X >= 0 && p.X <= r.W && p.Y >= 0 && p.Y <= r.H
}

// Validate reports every out-of-range value in the level.
func (c SpritesConfig) Validate() error {
	var errs fieldErrs

	errs.positive("screen.width", c.Screen.Width)
	errs.positive("screen.height", c.Screen.Height)
	errs.positive("playfield.w", c.Playfield.W)
	errs.positive("playfield.h", c.Playfield.H)
	errs.check(c.Playfield.X >= 0 && c.Playfield.Y >= 0 &&
		c.Playfield.X+c.Playfield.W <= c.Screen.Width &&
		c.Playfield.Y+c.Playfield.H <= c.Screen.Height,
		"playfield must lie inside the screen")
	errs.nonNegative("border_thickness", c.BorderThickness)

	p := c.Player
	errs.positive("player.hitbox", p.Hitbox)
	errs.positive("player.visual_size", p.VisualSize)
	errs.positive("player.speed", p.Speed)
	errs.check(p.Health >= 1, "player.health must be at least 1, got %d", p.Health)
	errs.nonNegative("player.invincibility", p.Invincibility)
	errs.nonNegative("player.knockback_speed", p.KnockbackSpeed)
	errs.nonNegative("player.knockback_time", p.KnockbackTime)
	local := RectSpec{W: c.Playfield.W, H: c.Playfield.H}
	errs.check(local.contains(p.Spawn), "player.spawn %v is outside the playfield", p.Spawn)

	// The goal stays locked until every coin is taken, so a level with
	// none would be won on the first frame.
	errs.check(len(c.Coins.Positions) > 0, "coins.positions must list at least one coin")
	errs.positive("coins.hitbox", c.Coins.Hitbox)
	errs.positive("coins.visual_size", c.Coins.VisualSize)
	for i, pos := range c.Coins.Positions {
		errs.check(local.contains(pos), "coins.positions[%d] %v is outside the playfield", i, pos)
	}

	errs.positive("goal.hitbox", c.Goal.Hitbox)
	errs.positive("goal.visual_size", c.Goal.VisualSize)
	errs.check(local.contains(c.Goal.Position), "goal.position %v is outside the playfield", c.Goal.Position)

	for i, h := range c.Hazards {
		name := fmt.Sprintf("hazards[%d]", i)
		errs.positive(name+".size", h.Size)
		errs.nonNegative(name+".range_x", h.RangeX)
		errs.nonNegative(name+".range_y", h.RangeY)
		errs.nonNegative(name+".speed_x", h.SpeedX)
		errs.nonNegative(name+".speed_y", h.SpeedY)
	}

	for i, w := range c.Walls {
		errs.positive(fmt.Sprintf("walls[%d].w", i), w.W)
		errs.positive(fmt.Sprintf("walls[%d].h", i), w.H)
	}

	errs.nonNegative("shake.duration", c.Shake.Duration)
	errs.nonNegative("shake.strength", c.Shake.Strength)
	errs.check(c.Scoring.CoinPoints >= 0, "scoring.coin_points must not be negative")
	errs.check(c.Scoring.HealthBonus >= 0, "scoring.health_bonus must not be negative")

	return errs.err()
}

// Validate reports every out-of-range value in the Pong config.
func (c PongConfig) Validate() error {
	var errs fieldErrs

	errs.positive("arena.width", c.Arena.Width)
	errs.positive("arena.height", c.Arena.Height)
	errs.positive("ball.size", c.Ball.Size)
	errs.positive("ball.speed", c.Ball.Speed)
	errs.check(c.Ball.Direction.X != 0 || c.Ball.Direction.Y != 0, "ball.direction must not be zero")
	errs.positive("paddle.width", c.Paddle.Width)
	errs.positive("paddle.height", c.Paddle.Height)
	errs.positive("paddle.speed", c.Paddle.Speed)
	errs.check(c.Paddle.Width <= c.Arena.Width, "paddle.width must fit in the arena")
	errs.check(c.Gameplay.Lives >= 1, "gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	errs.check(validProgression(c.Difficulty.Progression.Type),
		"difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type)

	return errs.err()
}

// Validate reports every out-of-range value in the Textures config.
func (c TexturesConfig) Validate() error {
	var errs fieldErrs

	errs.positive("arena.width", c.Arena.Width)
	errs.positive("arena.height", c.Arena.Height)
	errs.check(c.Player.Texture != "", "player.texture must be set")
	errs.positive("player.width", c.Player.Width)
	errs.positive("player.height", c.Player.Height)
	errs.nonNegative("player.speed", c.Player.Speed)

	return errs.err()
}

func validProgression(t string) bool {
	switch t {
	case "", "score", "time", "none":
		return true
	default:
		return false
	}
}
