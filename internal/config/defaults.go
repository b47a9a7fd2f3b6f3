package config

import (
	_ "embed"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/textures.yaml
var defaultTexturesYAML []byte

// DefaultSpritesConfig returns the default Sprites + Collisions level.
func DefaultSpritesConfig() SpritesConfig {
	return SpritesConfig{
		Screen:          Size{Width: 960, Height: 540},
		Playfield:       RectSpec{X: 12, Y: 68, W: 936, H: 460},
		BorderThickness: 16,
		Player: SpritesPlayer{
			Spawn:          Point{X: 75, Y: 380},
			Hitbox:         28,
			VisualSize:     38,
			Speed:          320,
			Health:         3,
			Invincibility:  0.85,
			KnockbackSpeed: 520,
			KnockbackTime:  0.12,
		},
		Coins: SpritesCoins{
			Hitbox:     18,
			VisualSize: 30,
			Positions: []Point{
				{X: 275, Y: 380},
				{X: 500, Y: 380},
				{X: 795, Y: 250},
				{X: 790, Y: 70},
				{X: 340, Y: 155},
				{X: 75, Y: 57},
				{X: 75, Y: 255},
			},
		},
		Goal: SpritesGoal{
			Position:   Point{X: 75, Y: 380},
			Hitbox:     25,
			VisualSize: 30,
		},
		Hazards: []HazardSpec{
			{Center: Point{X: 587, Y: 150}, Size: 28, RangeY: 75, SpeedY: 200},
			{Center: Point{X: 200, Y: 255}, Size: 28, RangeX: 160, SpeedX: 200},
			{Center: Point{X: 200, Y: 55}, Size: 28, RangeX: 160, SpeedX: 200},
		},
		Walls: []RectSpec{
			{X: 400, Y: 145, W: 125, H: 18},
			{X: 650, Y: 145, W: 275, H: 18},
			{X: 150, Y: 200, W: 125, H: 18},
			{X: 150, Y: 100, W: 125, H: 18},
			{X: 0, Y: 300, W: 650, H: 18},
			{X: 750, Y: 355, W: 90, H: 18},
		},
		Shake: ShakeConfig{
			Duration: 0.18,
			Strength: 9,
		},
		Scoring: ScoringConfig{
			CoinPoints:  10,
			HealthBonus: 50,
		},
	}
}

// DefaultPongConfig returns the default PongSpire configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: Size{Width: 1920, Height: 1080},
		Ball: PongBall{
			Size:      10,
			Start:     Point{X: 960, Y: 10},
			Serve:     Point{X: 500, Y: 20},
			Speed:     500,
			Direction: Point{X: 0.5, Y: 0.5},
		},
		Paddle: PongPaddle{
			Width:  50,
			Height: 5,
			Start:  Point{X: 960, Y: 1060},
			Speed:  1000,
		},
		Gameplay: PongGameplay{
			Lives: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultTexturesConfig returns the default Basic Textures configuration.
func DefaultTexturesConfig() TexturesConfig {
	return TexturesConfig{
		Arena: Size{Width: 1920, Height: 1080},
		Player: TexturedPlayer{
			Texture: "player-square.png",
			Width:   50,
			Height:  50,
			Speed:   400,
		},
	}
}
