package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rugman/editor"
	"github.com/milk9111/rugman/playtest"
	"golang.org/x/image/colornames"
)

const canvasMargin = 8

var (
	floorColor   = colornames.Darkslategray
	wallColor    = colornames.Dimgray
	wallLink     = colornames.Lightgray
	spawnColor   = colornames.Gold
	unknownColor = colornames.Magenta
	cursorColor  = colornames.Yellow
	playerColor  = colornames.Orangered
	gridColor    = color.RGBA{0, 0, 0, 80}
)

// canvas maps between screen pixels and tiles and draws the board.
type canvas struct {
	grid     *editor.Grid
	tileSize int
	originX  int
	originY  int

	// links maps a resolved wall index back to the directions it joins, so
	// the drawing shows what the resolver picked rather than recomputing it.
	links map[editor.TileMapIndex]editor.Pattern
}

func newCanvas(g *editor.Grid, tileSize int) *canvas {
	c := &canvas{grid: g, tileSize: tileSize, originX: canvasMargin, originY: canvasMargin + 16}
	c.setResolver(editor.NewResolver())
	return c
}

func (c *canvas) setResolver(r *editor.Resolver) {
	c.links = make(map[editor.TileMapIndex]editor.Pattern, 16)
	for p := editor.Pattern(0); p < 16; p++ {
		idx := r.Lookup(p)
		if idx == editor.IndexFloor {
			continue
		}
		if prev, ok := c.links[idx]; ok && bitCount(prev) >= bitCount(p) {
			continue
		}
		c.links[idx] = p
	}
}

func bitCount(p editor.Pattern) int {
	n := 0
	for _, set := range p.Flags() {
		if set {
			n++
		}
	}
	return n
}

func (c *canvas) width() int {
	return c.grid.Width() * c.tileSize
}

func (c *canvas) height() int {
	return c.grid.Height() * c.tileSize
}

func (c *canvas) tileAt(x, y int) (editor.TilePos, bool) {
	x -= c.originX
	y -= c.originY
	if x < 0 || y < 0 {
		return editor.TilePos{}, false
	}
	p := editor.TilePos{X: x / c.tileSize, Y: y / c.tileSize}
	if !c.grid.InBounds(p) {
		return editor.TilePos{}, false
	}
	return p, true
}

func (c *canvas) tileRect(p editor.TilePos) (x, y, size float32) {
	ts := float32(c.tileSize)
	return float32(c.originX) + float32(p.X)*ts, float32(c.originY) + float32(p.Y)*ts, ts
}

func (c *canvas) draw(screen *ebiten.Image, showIndices bool) {
	c.grid.Each(func(p editor.TilePos, cell *editor.Cell) {
		x, y, ts := c.tileRect(p)
		switch cell.Material {
		case editor.Wall:
			c.drawWall(screen, x, y, ts, cell.Index)
		case editor.PlayerSpawn:
			vector.FillRect(screen, x, y, ts, ts, floorColor, false)
			vector.FillRect(screen, x+ts/4, y+ts/4, ts/2, ts/2, spawnColor, false)
		default:
			vector.FillRect(screen, x, y, ts, ts, floorColor, false)
		}
		if cell.Index == editor.IndexUnknown {
			vector.StrokeRect(screen, x+1, y+1, ts-2, ts-2, 2, unknownColor, false)
		}
		vector.StrokeRect(screen, x, y, ts, ts, 1, gridColor, false)
		if showIndices {
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(int(cell.Index)), int(x)+2, int(y)+2)
		}
	})
}

func (c *canvas) drawWall(screen *ebiten.Image, x, y, ts float32, idx editor.TileMapIndex) {
	vector.FillRect(screen, x, y, ts, ts, wallColor, false)
	third := ts / 3
	vector.FillRect(screen, x+third, y+third, third, third, wallLink, false)
	p, ok := c.links[idx]
	if !ok {
		return
	}
	flags := p.Flags()
	for i, d := range editor.Clockwise {
		if !flags[i] {
			continue
		}
		switch d {
		case editor.North:
			vector.FillRect(screen, x+third, y, third, third, wallLink, false)
		case editor.East:
			vector.FillRect(screen, x+2*third, y+third, third, third, wallLink, false)
		case editor.South:
			vector.FillRect(screen, x+third, y+2*third, third, third, wallLink, false)
		case editor.West:
			vector.FillRect(screen, x, y+third, third, third, wallLink, false)
		}
	}
}

// drawCursor outlines the brush footprint centred on the cursor tile.
func (c *canvas) drawCursor(screen *ebiten.Image, at editor.TilePos, brush editor.Brush) {
	half := (brush.Size - 1) / 2
	x, y, ts := c.tileRect(editor.TilePos{X: at.X - half, Y: at.Y - half})
	side := ts * float32(brush.Size)
	vector.StrokeRect(screen, x, y, side, side, 2, cursorColor, false)
}

func (c *canvas) drawPlayer(screen *ebiten.Image, space *playtest.Space) {
	pos := space.PlayerPosition()
	size := float32(space.PlayerSize())
	x := float32(c.originX) + float32(pos.X) - size/2
	y := float32(c.originY) + float32(pos.Y) - size/2
	vector.FillRect(screen, x, y, size, size, playerColor, false)
}
