package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/rugman/editor"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Grid.Width != 32 || cfg.Grid.Height != 24 {
		t.Fatalf("grid = %+v, want defaults", cfg.Grid)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editor.yaml", `
grid:
  width: 10
  height: 8
brush:
  material: spawn
  size: 3
history:
  max_depth: 50
keys:
  undo: y
  redo: z
resolver:
  overrides:
    "none": 26
    "N+E": -1
log:
  level: DEBUG
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Grid.Width != 10 || cfg.Grid.Height != 8 || cfg.Grid.TileSize != 24 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		t.Fatalf("SessionOptions: %v", err)
	}
	if opts.MaxDepth != 50 {
		t.Fatalf("max depth = %d", opts.MaxDepth)
	}
	if opts.Brush.Material != editor.PlayerSpawn || opts.Brush.Size != 3 {
		t.Fatalf("brush = %+v", opts.Brush)
	}
	if opts.Keys.Undo != editor.KeyY || opts.Keys.Redo != editor.KeyZ || opts.Keys.Modifier != editor.KeyControl {
		t.Fatalf("keys = %+v", opts.Keys)
	}
	if got := opts.Resolver.Lookup(0); got != editor.IndexWallN {
		t.Fatalf("override for none = %d", got)
	}
	if got := opts.Resolver.Lookup(editor.PatternN | editor.PatternE); got != editor.IndexFloor {
		t.Fatalf("removed pattern = %d, want floor", got)
	}
	if cfg.Log.Level != "DEBUG" || !cfg.Log.ConsoleEnabled {
		t.Fatalf("log = %+v", cfg.Log)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"bad_yaml":     "grid: [",
		"bad_material": "brush:\n  material: lava\n",
		"bad_key":      "keys:\n  undo: hyper\n",
		"bad_pattern":  "resolver:\n  overrides:\n    \"N+Q\": 3\n",
		"bad_grid":     "grid:\n  width: 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "editor.yaml", body)
			cfg, err := LoadConfig(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if cfg == nil || cfg.Grid.Width != 32 {
				t.Fatalf("invalid config should fall back to defaults")
			}
		})
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "editor.yaml", "grid:\n  width: 4\n  height: 4\n")
	writeFile(t, dir, "other.yaml", "x: 1\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "other.yaml", "x: 2\n")
	writeFile(t, dir, "editor.yaml", "grid:\n  width: 5\n  height: 5\n")

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "editor.yaml" {
			t.Fatalf("event for %s, want editor.yaml", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for config write")
	}
}
