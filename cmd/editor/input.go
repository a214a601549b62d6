package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rugman/editor"
)

var ebitenKeys = map[editor.Key][]ebiten.Key{
	editor.KeyShift:        {ebiten.KeyShift},
	editor.KeyControl:      {ebiten.KeyControl, ebiten.KeyMeta},
	editor.KeySpace:        {ebiten.KeySpace},
	editor.KeyZ:            {ebiten.KeyZ},
	editor.KeyY:            {ebiten.KeyY},
	editor.KeyC:            {ebiten.KeyC},
	editor.Key1:            {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	editor.Key2:            {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	editor.Key3:            {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	editor.KeyBracketLeft:  {ebiten.KeyBracketLeft},
	editor.KeyBracketRight: {ebiten.KeyBracketRight},
	editor.KeyF5:           {ebiten.KeyF5},
}

var ebitenButtons = map[editor.MouseButton]ebiten.MouseButton{
	editor.MouseLeft:  ebiten.MouseButtonLeft,
	editor.MouseRight: ebiten.MouseButtonRight,
}

// frameInput adapts ebiten's polled input to editor.Input. Cursor positions
// are mapped onto the canvas; anything outside it has no tile.
type frameInput struct {
	canvas *canvas
}

func (in *frameInput) KeyPressed(k editor.Key) bool {
	for _, ek := range ebitenKeys[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (in *frameInput) KeyJustPressed(k editor.Key) bool {
	for _, ek := range ebitenKeys[k] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}

func (in *frameInput) MousePressed(b editor.MouseButton) bool {
	mb, ok := ebitenButtons[b]
	return ok && ebiten.IsMouseButtonPressed(mb)
}

func (in *frameInput) MouseJustPressed(b editor.MouseButton) bool {
	mb, ok := ebitenButtons[b]
	return ok && inpututil.IsMouseButtonJustPressed(mb)
}

func (in *frameInput) MouseJustReleased(b editor.MouseButton) bool {
	mb, ok := ebitenButtons[b]
	return ok && inpututil.IsMouseButtonJustReleased(mb)
}

func (in *frameInput) CursorTile() (editor.TilePos, bool) {
	x, y := ebiten.CursorPosition()
	return in.canvas.tileAt(x, y)
}

// moveAxis reads the playtest movement keys.
func moveAxis() (dx, dy float64) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	return dx, dy
}
