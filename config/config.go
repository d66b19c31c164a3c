package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Logging LoggingConfig `toml:"logging"`
	Prefabs PrefabsConfig `toml:"prefabs"`
}

// WindowConfig sizes the logical screen. Height doubles as the kill plane.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
}

type WorldConfig struct {
	Capacity   int    `toml:"capacity"`
	LevelsFile string `toml:"levels_file"` // empty = embedded set
	StartLevel int    `toml:"start_level"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PrefabsConfig struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// Load overlays the file at path on the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.Window.TPS)
	}
	if c.World.Capacity <= 0 {
		return fmt.Errorf("world capacity %d must be positive", c.World.Capacity)
	}
	if c.World.StartLevel < 0 {
		return fmt.Errorf("start level %d must not be negative", c.World.StartLevel)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "windowhop",
			Width:  1920,
			Height: 1080,
			TPS:    60,
		},
		World: WorldConfig{
			Capacity: 20000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Prefabs: PrefabsConfig{
			Dir:   "prefabs",
			Watch: false,
		},
	}
}
