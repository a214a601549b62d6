package editor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMaterial = errors.New("editor: unknown tile material")
	ErrUnknownKey      = errors.New("editor: unknown key")
)

// TilePos is a grid coordinate. Y grows downwards.
type TilePos struct {
	X int
	Y int
}

func (p TilePos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add offsets p by d.
func (p TilePos) Add(d TilePos) TilePos {
	return TilePos{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction names one of the four orthogonal neighbours.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Clockwise is the fixed probe order used by the resolver.
var Clockwise = [4]Direction{North, East, South, West}

func (d Direction) Offset() TilePos {
	switch d {
	case North:
		return TilePos{Y: -1}
	case East:
		return TilePos{X: 1}
	case South:
		return TilePos{Y: 1}
	case West:
		return TilePos{X: -1}
	default:
		return TilePos{}
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// TileMaterial is what a cell is made of.
type TileMaterial int

const (
	Floor TileMaterial = iota
	Wall
	PlayerSpawn
)

func (m TileMaterial) String() string {
	switch m {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case PlayerSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// ParseMaterial accepts the names produced by String plus a few aliases.
func ParseMaterial(s string) (TileMaterial, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floor", "eraser":
		return Floor, nil
	case "wall":
		return Wall, nil
	case "spawn", "player_spawn", "playerspawn":
		return PlayerSpawn, nil
	default:
		return Floor, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
	}
}
