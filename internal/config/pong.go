package config

// PongConfig contains all configuration for the single-paddle Pong game.
type PongConfig struct {
	Arena      Size             `yaml:"arena"`
	Ball       PongBall         `yaml:"ball"`
	Paddle     PongPaddle       `yaml:"paddle"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongBall defines the ball.
type PongBall struct {
	Size      float64 `yaml:"size"`
	Start     Point   `yaml:"start"`     // Position at the start of a run
	Serve     Point   `yaml:"serve"`     // Position after a miss
	Speed     float64 `yaml:"speed"`     // Units per second along each axis
	Direction Point   `yaml:"direction"` // Initial per-axis direction
}

// PongPaddle defines the player's paddle.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Start  Point   `yaml:"start"` // Top-left corner
	Speed  float64 `yaml:"speed"`
}

// PongGameplay defines rules.
type PongGameplay struct {
	Lives int `yaml:"lives"`
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 7
	case DifficultyHard:
		cfg.Gameplay.Lives = 3
	}
}
