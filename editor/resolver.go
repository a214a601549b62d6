package editor

import (
	"fmt"
	"strings"
)

// TileMapIndex is a sprite index into the 13x11 1-bit tileset.
type TileMapIndex int

const (
	IndexUnknown     TileMapIndex = 0
	IndexFloor       TileMapIndex = 1
	IndexPlayerSpawn TileMapIndex = 4

	IndexWallNS   TileMapIndex = 13
	IndexWallEW   TileMapIndex = 14
	IndexWallES   TileMapIndex = 15
	IndexWallSW   TileMapIndex = 16
	IndexWallNE   TileMapIndex = 17
	IndexWallNW   TileMapIndex = 18
	IndexWallNES  TileMapIndex = 19
	IndexWallESW  TileMapIndex = 20
	IndexWallNSW  TileMapIndex = 21
	IndexWallNEW  TileMapIndex = 22
	IndexWallNESW TileMapIndex = 23
	IndexWallN    TileMapIndex = 26
	IndexWallE    TileMapIndex = 27
	IndexWallS    TileMapIndex = 28
	IndexWallW    TileMapIndex = 29
)

// Pattern is the 4-bit wall connectivity of a cell.
type Pattern uint8

const (
	PatternN Pattern = 1 << iota
	PatternE
	PatternS
	PatternW
)

// PatternOf packs the N, E, S, W connectivity flags.
func PatternOf(n, e, s, w bool) Pattern {
	var p Pattern
	if n {
		p |= PatternN
	}
	if e {
		p |= PatternE
	}
	if s {
		p |= PatternS
	}
	if w {
		p |= PatternW
	}
	return p
}

// Flags unpacks the pattern in N, E, S, W order.
func (p Pattern) Flags() [4]bool {
	return [4]bool{p&PatternN != 0, p&PatternE != 0, p&PatternS != 0, p&PatternW != 0}
}

// String renders the pattern as "N+E+W", or "none" when empty.
func (p Pattern) String() string {
	if p&0x0f == 0 {
		return "none"
	}
	var parts []string
	for i, d := range Clockwise {
		if p&(1<<i) != 0 {
			parts = append(parts, d.String())
		}
	}
	return strings.Join(parts, "+")
}

// ParsePattern reads the String form. Order of the letters does not matter.
func ParsePattern(s string) (Pattern, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "NONE" || s == "" {
		return 0, nil
	}
	var p Pattern
	for _, part := range strings.Split(s, "+") {
		switch strings.TrimSpace(part) {
		case "N":
			p |= PatternN
		case "E":
			p |= PatternE
		case "S":
			p |= PatternS
		case "W":
			p |= PatternW
		default:
			return 0, fmt.Errorf("editor: bad connectivity pattern %q", s)
		}
	}
	return p, nil
}

// DefaultTable returns the wall sprite table. The empty pattern shares the
// north+south sprite.
func DefaultTable() map[Pattern]TileMapIndex {
	t := make(map[Pattern]TileMapIndex, 16)
	t[0] = IndexWallNS
	t[PatternN] = IndexWallN
	t[PatternE] = IndexWallE
	t[PatternS] = IndexWallS
	t[PatternW] = IndexWallW
	t[PatternN|PatternS] = IndexWallNS
	t[PatternE|PatternW] = IndexWallEW
	t[PatternE|PatternS] = IndexWallES
	t[PatternS|PatternW] = IndexWallSW
	t[PatternN|PatternE] = IndexWallNE
	t[PatternN|PatternW] = IndexWallNW
	t[PatternN|PatternE|PatternS] = IndexWallNES
	t[PatternE|PatternS|PatternW] = IndexWallESW
	t[PatternN|PatternS|PatternW] = IndexWallNSW
	t[PatternN|PatternE|PatternW] = IndexWallNEW
	t[PatternN|PatternE|PatternS|PatternW] = IndexWallNESW
	return t
}

// Resolver maps cells to sprite indices.
type Resolver struct {
	table map[Pattern]TileMapIndex
}

func NewResolver() *Resolver {
	return &Resolver{table: DefaultTable()}
}

// Override replaces the sprite for one pattern.
func (r *Resolver) Override(p Pattern, idx TileMapIndex) {
	if r.table == nil {
		r.table = map[Pattern]TileMapIndex{}
	}
	r.table[p&0x0f] = idx
}

// Remove drops a pattern so it falls back to the floor sprite.
func (r *Resolver) Remove(p Pattern) {
	delete(r.table, p&0x0f)
}

// Lookup returns the sprite for a wall pattern. Patterns missing from the
// table get the floor sprite.
func (r *Resolver) Lookup(p Pattern) TileMapIndex {
	if idx, ok := r.table[p]; ok {
		return idx
	}
	return IndexFloor
}

// Connectivity probes the four neighbours of p; only Wall cells connect.
func (r *Resolver) Connectivity(g *Grid, p TilePos) Pattern {
	var out Pattern
	neighbors := g.Neighbors(p, Clockwise[:]...)
	for i, d := range Clockwise {
		if c := neighbors[d]; c != nil && c.Material == Wall {
			out |= 1 << i
		}
	}
	return out
}

// ResolveCell computes the sprite for the cell at p.
func (r *Resolver) ResolveCell(g *Grid, p TilePos) TileMapIndex {
	c, ok := g.Lookup(p)
	if !ok {
		return IndexUnknown
	}
	switch c.Material {
	case Floor:
		return IndexFloor
	case PlayerSpawn:
		return IndexPlayerSpawn
	case Wall:
		return r.Lookup(r.Connectivity(g, p))
	default:
		return IndexUnknown
	}
}

// RefreshBoard recomputes every cell's sprite from scratch and clears the
// dirty markers. It returns the number of wall cells resolved.
func (r *Resolver) RefreshBoard(g *Grid) int {
	walls := 0
	g.Each(func(p TilePos, c *Cell) {
		c.Index = r.ResolveCell(g, p)
		if c.Material == Wall {
			walls++
		}
	})
	g.clearDirty()
	return walls
}
