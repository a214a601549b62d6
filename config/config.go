package config

import (
	"fmt"
	"os"

	"github.com/milk9111/rugman/editor"
	"github.com/milk9111/rugman/logger"
	"gopkg.in/yaml.v3"
)

// Config holds editor settings loaded from YAML.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Brush    BrushConfig    `yaml:"brush"`
	History  HistoryConfig  `yaml:"history"`
	Keys     KeysConfig     `yaml:"keys"`
	Resolver ResolverConfig `yaml:"resolver"`
	Scripts  ScriptsConfig  `yaml:"scripts"`
	Log      logger.Config  `yaml:"log"`
}

// GridConfig sizes the board when no level file is given.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

type BrushConfig struct {
	Material string `yaml:"material"`
	Size     int    `yaml:"size"`
}

type HistoryConfig struct {
	// MaxDepth caps undo history; 0 keeps everything.
	MaxDepth int `yaml:"max_depth"`
}

// KeysConfig names the key for each editor command.
type KeysConfig struct {
	Modifier   string `yaml:"modifier"`
	Range      string `yaml:"range"`
	Undo       string `yaml:"undo"`
	Redo       string `yaml:"redo"`
	Wall       string `yaml:"wall"`
	Floor      string `yaml:"floor"`
	Spawn      string `yaml:"spawn"`
	SizeDown   string `yaml:"size_down"`
	SizeUp     string `yaml:"size_up"`
	ToggleMode string `yaml:"toggle_mode"`
	Stamp      string `yaml:"stamp"`
}

// ResolverConfig overrides wall sprites by pattern, e.g. "N+E+W": 22.
type ResolverConfig struct {
	Overrides map[string]int `yaml:"overrides"`
}

type ScriptsConfig struct {
	// Stamp is a tengo script run at the cursor by the stamp key.
	Stamp string `yaml:"stamp"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Grid:  GridConfig{Width: 32, Height: 24, TileSize: 24},
		Brush: BrushConfig{Material: "wall", Size: 1},
		Keys: KeysConfig{
			Modifier:   "control",
			Range:      "shift",
			Undo:       "z",
			Redo:       "y",
			Wall:       "1",
			Floor:      "2",
			Spawn:      "3",
			SizeDown:   "[",
			SizeUp:     "]",
			ToggleMode: "space",
			Stamp:      "f5",
		},
		Log: logger.DefaultConfig(),
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate checks every named material, key and pattern.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive")
	}
	if c.History.MaxDepth < 0 {
		return fmt.Errorf("config: history.max_depth must not be negative")
	}
	if _, err := c.BrushSettings(); err != nil {
		return err
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	if err := c.ApplyResolver(editor.NewResolver()); err != nil {
		return err
	}
	return nil
}

// BrushSettings converts the brush section.
func (c *Config) BrushSettings() (editor.Brush, error) {
	m, err := editor.ParseMaterial(c.Brush.Material)
	if err != nil {
		return editor.DefaultBrush(), fmt.Errorf("config: brush.material: %w", err)
	}
	b := editor.Brush{Material: m, Size: 1}
	b.Apply(editor.SetSize(c.Brush.Size))
	return b, nil
}

// Keymap resolves the key names.
func (c *Config) Keymap() (editor.Keymap, error) {
	km := editor.DefaultKeymap()
	bindings := []struct {
		name string
		dst  *editor.Key
	}{
		{c.Keys.Modifier, &km.Modifier},
		{c.Keys.Range, &km.Range},
		{c.Keys.Undo, &km.Undo},
		{c.Keys.Redo, &km.Redo},
		{c.Keys.Wall, &km.Wall},
		{c.Keys.Floor, &km.Floor},
		{c.Keys.Spawn, &km.Spawn},
		{c.Keys.SizeDown, &km.SizeDown},
		{c.Keys.SizeUp, &km.SizeUp},
		{c.Keys.ToggleMode, &km.ToggleMode},
		{c.Keys.Stamp, &km.Stamp},
	}
	for _, b := range bindings {
		if b.name == "" {
			continue
		}
		k, err := editor.ParseKey(b.name)
		if err != nil {
			return editor.DefaultKeymap(), fmt.Errorf("config: keys: %w", err)
		}
		*b.dst = k
	}
	return km, nil
}

// ApplyResolver writes the configured overrides into r.
func (c *Config) ApplyResolver(r *editor.Resolver) error {
	for name, idx := range c.Resolver.Overrides {
		p, err := editor.ParsePattern(name)
		if err != nil {
			return fmt.Errorf("config: resolver.overrides: %w", err)
		}
		if idx < 0 {
			r.Remove(p)
			continue
		}
		r.Override(p, editor.TileMapIndex(idx))
	}
	return nil
}

// SessionOptions builds editor options from the config.
func (c *Config) SessionOptions() (editor.Options, error) {
	opts := editor.DefaultOptions()
	opts.MaxDepth = c.History.MaxDepth

	var err error
	if opts.Brush, err = c.BrushSettings(); err != nil {
		return opts, err
	}
	if opts.Keys, err = c.Keymap(); err != nil {
		return opts, err
	}
	opts.Resolver = editor.NewResolver()
	if err := c.ApplyResolver(opts.Resolver); err != nil {
		return opts, err
	}
	return opts, nil
}
