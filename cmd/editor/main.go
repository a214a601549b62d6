package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rugman/config"
	"github.com/milk9111/rugman/editor"
	"github.com/milk9111/rugman/levels"
	"github.com/milk9111/rugman/logger"
	"github.com/milk9111/rugman/script"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "path to the editor config (YAML); missing means defaults")
	levelName := flag.String("level", "default.json", "level file on disk or name in levels/ (.json optional); empty starts a blank grid")
	debug := flag.Bool("debug", false, "enable debug logging and draw tile indices")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("config %s: %v (using defaults)", *configPath, err)
	}
	if *debug {
		cfg.Log.Level = "DEBUG"
	}
	if err := logger.Initialize(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("editor starting", "config", *configPath, "level", *levelName)

	grid, err := loadGrid(*levelName, cfg)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	var stamper editor.Stamper
	if cfg.Scripts.Stamp != "" {
		st, err := script.Load(cfg.Scripts.Stamp)
		if err != nil {
			logger.Error("stamp script disabled", "script", cfg.Scripts.Stamp, "err", err)
		} else {
			stamper = st
		}
	}

	watcher, err := config.NewWatcher(*configPath)
	if err != nil {
		logger.Warning("config hot reload disabled", "err", err)
		watcher = nil
	}

	game, err := NewEditorGame(gameOptions{
		grid:       grid,
		cfg:        cfg,
		configPath: *configPath,
		watcher:    watcher,
		stamper:    stamper,
		debug:      *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("rugman editor")
	ebiten.SetWindowSize(game.screenWidth, game.screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadGrid prefers a file on disk, then the embedded levels. An empty name
// gives a blank grid sized from the config.
func loadGrid(name string, cfg *config.Config) (*editor.Grid, error) {
	if name == "" {
		return editor.NewGrid(cfg.Grid.Width, cfg.Grid.Height), nil
	}
	if _, err := os.Stat(name); err == nil {
		lvl, err := levels.LoadLevelFile(name)
		if err != nil {
			return nil, err
		}
		return lvl.Grid(), nil
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, err
	}
	return lvl.Grid(), nil
}
