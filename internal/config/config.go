// Package config holds the tunable settings of the client: window size,
// world seed, movement speed, and combat pacing. Settings load from a YAML
// file layered over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Game   GameConfig   `yaml:"game"`

	// Audio toggles sound-effect playback. Off is always safe on hosts
	// without an audio device.
	Audio bool `yaml:"audio"`

	// LogLevel is "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level"`
}

// WindowConfig sizes the game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WorldConfig tunes map generation.
type WorldConfig struct {
	Seed      int64 `yaml:"seed"` // 0 means seed from the clock
	Width     int   `yaml:"width"`
	Height    int   `yaml:"height"`
	Buildings int   `yaml:"buildings"`
	Pools     int   `yaml:"pools"`
}

// GameConfig tunes the simulation.
type GameConfig struct {
	// WalkMillisPerTile is the time an entity spends crossing one cell.
	WalkMillisPerTile float64 `yaml:"walk_millis_per_tile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 1280, Height: 800, Title: "Ashfall"},
		World:    WorldConfig{Width: 48, Height: 48, Buildings: 6, Pools: 4},
		Game:     GameConfig{WalkMillisPerTile: 200},
		Audio:    true,
		LogLevel: "info",
	}
}

// Load reads a config file over the defaults. A missing file is not an
// error; the defaults simply apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Game.WalkMillisPerTile <= 0 {
		return fmt.Errorf("walk_millis_per_tile must be positive, got %v", c.Game.WalkMillisPerTile)
	}
	return nil
}
