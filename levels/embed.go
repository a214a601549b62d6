package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/milk9111/rugman/editor"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrBadDimensions = errors.New("levels: rows do not match dimensions")

const (
	glyphWall  = '#'
	glyphFloor = '.'
	glyphSpawn = '@'
	glyphEmpty = ' '
)

// Level is a starting layout. Each row has Width glyphs: '#' wall, '.'
// floor, '@' player spawn and ' ' for no cell.
type Level struct {
	Name   string   `json:"name,omitempty"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parse(data)
}

func LoadLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks the rows against Width and Height. Short rows are allowed
// and padded with floor.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, l.Width, l.Height)
	}
	if len(l.Rows) > l.Height {
		return fmt.Errorf("%w: %d rows for height %d", ErrBadDimensions, len(l.Rows), l.Height)
	}
	for y, row := range l.Rows {
		if len(row) > l.Width {
			return fmt.Errorf("%w: row %d has %d glyphs for width %d", ErrBadDimensions, y, len(row), l.Width)
		}
		for x, r := range row {
			switch r {
			case glyphWall, glyphFloor, glyphSpawn, glyphEmpty:
			default:
				return fmt.Errorf("levels: unknown glyph %q at (%d,%d)", r, x, y)
			}
		}
	}
	return nil
}

// Grid builds an editor grid from the layout.
func (l *Level) Grid() *editor.Grid {
	g := editor.NewGrid(l.Width, l.Height)
	for y, row := range l.Rows {
		for x, r := range row {
			pos := editor.TilePos{X: x, Y: y}
			switch r {
			case glyphWall:
				editor.Commit(g, editor.PlaceTile(pos, editor.Wall, 1))
			case glyphSpawn:
				editor.Commit(g, editor.PlaceTile(pos, editor.PlayerSpawn, 1))
			case glyphEmpty:
				g.SetOccupied(pos, false)
			}
		}
	}
	return g
}

// Encode renders g in the row format used by Level.
func Encode(g *editor.Grid) []string {
	rows := make([]string, g.Height())
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.Reset()
		for x := 0; x < g.Width(); x++ {
			c, ok := g.Lookup(editor.TilePos{X: x, Y: y})
			switch {
			case !ok:
				b.WriteRune(glyphEmpty)
			case c.Material == editor.Wall:
				b.WriteRune(glyphWall)
			case c.Material == editor.PlayerSpawn:
				b.WriteRune(glyphSpawn)
			default:
				b.WriteRune(glyphFloor)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// Text joins Encode's rows with newlines.
func Text(g *editor.Grid) string {
	return strings.Join(Encode(g), "\n")
}
