package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validated is satisfied by every game config.
type validated interface {
	Validate() error
}

// LoadSprites loads the Sprites + Collisions level.
// Search order: customPath -> ~/.arcade/configs/sprites.yaml -> ./configs/sprites.yaml -> embedded default
func LoadSprites(customPath string) (SpritesConfig, error) {
	return load("sprites", customPath, defaultSpritesYAML, DefaultSpritesConfig)
}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadTextures loads Basic Textures configuration.
// Search order: customPath -> ~/.arcade/configs/textures.yaml -> ./configs/textures.yaml -> embedded default
func LoadTextures(customPath string) (TexturesConfig, error) {
	return load("textures", customPath, defaultTexturesYAML, DefaultTexturesConfig)
}

// load resolves one game config. Every file is decoded on top of the
// hardcoded defaults, so a file only needs the keys it changes.
// A custom path must work; user and local files are skipped when they
// cannot be read, parsed or validated.
func load[T validated](id, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", id, err)
		}
		return cfg, nil
	}

	for _, path := range SearchPaths(id) {
		if cfg, err := decodeFile(path, defaults); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T validated](path string, defaults func() T) (T, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SearchPaths returns the on-disk locations checked for a game's config,
// in priority order. The embedded default is not included.
func SearchPaths(id string) []string {
	filename := id + ".yaml"
	var paths []string
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", filename))
}

// WatchPaths returns the files whose changes should trigger a reload.
func WatchPaths(id, customPath string) []string {
	if customPath != "" {
		return []string{customPath}
	}
	return SearchPaths(id)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
