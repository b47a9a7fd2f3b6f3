package config

// TexturesConfig contains configuration for the textured sprite demo.
type TexturesConfig struct {
	Arena  Size           `yaml:"arena"`
	Player TexturedPlayer `yaml:"player"`
}

// TexturedPlayer defines the textured player sprite.
type TexturedPlayer struct {
	Texture string  `yaml:"texture"` // File name looked up in the asset set
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
}
