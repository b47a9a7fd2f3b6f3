package config

// SpritesConfig describes the sprite/collision level: arena layout, player
// tuning and every entity placement. Level coordinates are relative to the
// playfield's top-left corner.
type SpritesConfig struct {
	Screen          Size          `yaml:"screen"`
	Playfield       RectSpec      `yaml:"playfield"`
	BorderThickness float64       `yaml:"border_thickness"`
	Player          SpritesPlayer `yaml:"player"`
	Coins           SpritesCoins  `yaml:"coins"`
	Goal            SpritesGoal   `yaml:"goal"`
	Hazards         []HazardSpec  `yaml:"hazards"`
	Walls           []RectSpec    `yaml:"walls"`
	Shake           ShakeConfig   `yaml:"shake"`
	Scoring         ScoringConfig `yaml:"scoring"`
}

// SpritesPlayer tunes the controllable square.
type SpritesPlayer struct {
	Spawn          Point   `yaml:"spawn"`
	Hitbox         float64 `yaml:"hitbox"`
	VisualSize     float64 `yaml:"visual_size"`
	Speed          float64 `yaml:"speed"`
	Health         int     `yaml:"health"`
	Invincibility  float64 `yaml:"invincibility"`   // Seconds of immunity after a hit
	KnockbackSpeed float64 `yaml:"knockback_speed"` // Impulse magnitude away from the hazard
	KnockbackTime  float64 `yaml:"knockback_time"`  // Seconds the impulse is applied
}

// SpritesCoins lists the collectibles.
type SpritesCoins struct {
	Hitbox     float64 `yaml:"hitbox"`
	VisualSize float64 `yaml:"visual_size"`
	Positions  []Point `yaml:"positions"`
}

// SpritesGoal places the exit. It unlocks once every coin is collected.
type SpritesGoal struct {
	Position   Point   `yaml:"position"`
	Hitbox     float64 `yaml:"hitbox"`
	VisualSize float64 `yaml:"visual_size"`
}

// HazardSpec places one patrolling hazard. It ping-pongs around Center
// within ±Range on each axis; a zero range keeps that axis still.
type HazardSpec struct {
	Center Point   `yaml:"center"`
	Size   float64 `yaml:"size"`
	RangeX float64 `yaml:"range_x"`
	RangeY float64 `yaml:"range_y"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
}

// ShakeConfig tunes the camera shake after damage.
type ShakeConfig struct {
	Duration float64 `yaml:"duration"`
	Strength float64 `yaml:"strength"`
}

// ScoringConfig turns a finished run into a stored score.
type ScoringConfig struct {
	CoinPoints  int `yaml:"coin_points"`
	HealthBonus int `yaml:"health_bonus"` // Per remaining health point on victory
}

// ApplySpritesPreset modifies the config based on a difficulty preset.
func ApplySpritesPreset(cfg *SpritesConfig, preset DifficultyPreset) {
	scale := 1.0
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
		scale = 0.75
	case DifficultyHard:
		cfg.Player.Health = 2
		scale = 1.3
	}

	for i := range cfg.Hazards {
		cfg.Hazards[i].SpeedX *= scale
		cfg.Hazards[i].SpeedY *= scale
	}
}
