package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/rugman/config"
	"github.com/milk9111/rugman/editor"
	"github.com/milk9111/rugman/levels"
	"github.com/milk9111/rugman/logger"
	"github.com/milk9111/rugman/playtest"
	"golang.design/x/clipboard"
)

const playStep = 1.0 / 60.0

// EditorGame is the ebiten host around an editor.Session.
type EditorGame struct {
	session *editor.Session
	canvas  *canvas
	input   *frameInput
	ui      *ebitenui.UI
	panel   *BrushPanel

	configPath string
	watcher    *config.Watcher
	tileSize   int

	play         *playtest.Space
	clipboardOK  bool
	debug        bool
	screenWidth  int
	screenHeight int
}

type gameOptions struct {
	grid       *editor.Grid
	cfg        *config.Config
	configPath string
	watcher    *config.Watcher
	stamper    editor.Stamper
	debug      bool
}

func NewEditorGame(opts gameOptions) (*EditorGame, error) {
	sessionOpts, err := opts.cfg.SessionOptions()
	if err != nil {
		return nil, err
	}
	session := editor.NewSession(opts.grid, sessionOpts)
	if opts.stamper != nil {
		session.SetStamper(opts.stamper)
	}

	cv := newCanvas(opts.grid, opts.cfg.Grid.TileSize)
	cv.setResolver(session.Resolver)

	g := &EditorGame{
		session:    session,
		canvas:     cv,
		input:      &frameInput{canvas: cv},
		configPath: opts.configPath,
		watcher:    opts.watcher,
		tileSize:   opts.cfg.Grid.TileSize,
		debug:      opts.debug,
	}
	g.screenWidth = cv.originX + cv.width() + canvasMargin + panelWidth
	g.screenHeight = max(cv.originY+cv.height()+canvasMargin, 360)

	g.ui, g.panel = BuildEditorUI(panelActions{
		onMaterial: func(m editor.TileMaterial) { session.QueueBrush(editor.SetMaterial(m)) },
		onSize:     func(delta int) { session.QueueBrush(editor.SetSize(session.Brush.Size + delta)) },
		onUndo:     session.RequestUndo,
		onRedo:     session.RequestRedo,
		onMode:     session.RequestToggleMode,
	}, session.Brush)
	session.SetOverlay(g.panel)

	if err := clipboard.Init(); err != nil {
		logger.Warning("clipboard unavailable, level copy disabled", "err", err)
	} else {
		g.clipboardOK = true
	}
	return g, nil
}

func (g *EditorGame) Update() error {
	g.reloadConfig()

	if g.ui != nil {
		g.ui.Update()
	}

	keys := g.session.Keys
	if g.clipboardOK && g.input.KeyPressed(keys.Modifier) && g.input.KeyJustPressed(editor.KeyC) {
		g.copyLevel()
	}

	g.session.Tick(g.input)

	switch g.session.Mode() {
	case editor.ModePlay:
		if g.play == nil {
			g.play = playtest.New(g.session.Grid, g.tileSize)
		}
		g.play.Move(moveAxis())
		g.play.Step(playStep)
	default:
		g.play = nil
	}
	return nil
}

// reloadConfig applies key bindings and resolver overrides from a changed
// config file. Grid and brush settings only apply at startup.
func (g *EditorGame) reloadConfig() {
	if g.watcher == nil {
		return
	}
	if _, ok := g.watcher.Poll(); !ok {
		return
	}
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		logger.Warning("config reload failed, keeping current settings", "path", g.configPath, "err", err)
		return
	}
	keys, err := cfg.Keymap()
	if err != nil {
		logger.Warning("config reload failed, keeping current settings", "path", g.configPath, "err", err)
		return
	}
	r := editor.NewResolver()
	if err := cfg.ApplyResolver(r); err != nil {
		logger.Warning("config reload failed, keeping current settings", "path", g.configPath, "err", err)
		return
	}

	g.session.Keys = keys
	g.session.Resolver = r
	g.canvas.setResolver(r)
	grid := g.session.Grid
	grid.Each(func(p editor.TilePos, _ *editor.Cell) {
		grid.MarkDirty(p)
	})
	logger.Info("config reloaded", "path", g.configPath)
}

func (g *EditorGame) copyLevel() {
	text := levels.Text(g.session.Grid)
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Info("level copied to clipboard", "grid", g.session.Grid.String())
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	g.canvas.draw(screen, g.debug)

	if g.play != nil {
		g.canvas.drawPlayer(screen, g.play)
	} else if pos, ok := g.input.CursorTile(); ok {
		g.canvas.drawCursor(screen, pos, g.session.Brush)
	}

	if g.ui != nil {
		g.ui.Draw(screen)
	}

	st := g.session.Stack
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  brush: %s x%d  history: %d/%d  FPS: %.0f",
		g.session.Mode(), g.session.Brush.Material, g.session.Brush.Size, st.Cursor(), st.Len(), ebiten.ActualFPS()),
		canvasMargin, 4)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Close ends the session and stops watching the config file.
func (g *EditorGame) Close() {
	g.session.Teardown()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logger.Warning("closing config watcher", "err", err)
		}
	}
}
