package editor

import (
	"fmt"

	"github.com/milk9111/rugman/ecs"
)

// Cell is one grid slot. Cells with Occupied false behave as missing.
type Cell struct {
	Occupied bool
	Material TileMaterial
	Index    TileMapIndex
}

// Grid stores cells row-major and tracks which cells were touched since the
// last board refresh.
type Grid struct {
	width  int
	height int
	cells  []Cell
	dirty  ecs.SparseSet[TilePos]
}

// NewGrid creates a width x height grid of occupied Floor cells.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Cell{Occupied: true, Material: Floor, Index: IndexFloor}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.width, g.height)
}

// InBounds reports whether p addresses a slot, occupied or not.
func (g *Grid) InBounds(p TilePos) bool {
	return g != nil && p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *Grid) index(p TilePos) int {
	return p.Y*g.width + p.X
}

func (g *Grid) posOf(idx int) TilePos {
	return TilePos{X: idx % g.width, Y: idx / g.width}
}

// Lookup returns the cell at p, or false when p is out of bounds or the slot
// is unoccupied.
func (g *Grid) Lookup(p TilePos) (*Cell, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	c := &g.cells[g.index(p)]
	if !c.Occupied {
		return nil, false
	}
	return c, true
}

// SetOccupied adds or removes the backing cell at p. New cells start as Floor.
func (g *Grid) SetOccupied(p TilePos, occupied bool) {
	if !g.InBounds(p) {
		return
	}
	c := &g.cells[g.index(p)]
	if c.Occupied == occupied {
		return
	}
	*c = Cell{Occupied: occupied}
	if occupied {
		c.Material = Floor
		c.Index = IndexFloor
	}
	g.MarkDirty(p)
}

// Neighbors returns the cell in each requested direction; missing neighbours
// map to nil. With no directions it probes all four.
func (g *Grid) Neighbors(p TilePos, dirs ...Direction) map[Direction]*Cell {
	if len(dirs) == 0 {
		dirs = Clockwise[:]
	}
	out := make(map[Direction]*Cell, len(dirs))
	for _, d := range dirs {
		c, ok := g.Lookup(p.Add(d.Offset()))
		if !ok {
			c = nil
		}
		out[d] = c
	}
	return out
}

// setMaterial writes m at p and marks the cell dirty. It returns the previous
// material, or false if there is no cell.
func (g *Grid) setMaterial(p TilePos, m TileMaterial) (TileMaterial, bool) {
	c, ok := g.Lookup(p)
	if !ok {
		return Floor, false
	}
	prev := c.Material
	c.Material = m
	g.MarkDirty(p)
	return prev, true
}

// MarkDirty flags p for the next board refresh.
func (g *Grid) MarkDirty(p TilePos) {
	if !g.InBounds(p) {
		return
	}
	g.dirty.Set(g.index(p)+1, p)
}

// DirtyCount is the number of cells touched since the last refresh.
func (g *Grid) DirtyCount() int {
	return g.dirty.Len()
}

// DirtyPositions lists the touched cells in marking order.
func (g *Grid) DirtyPositions() []TilePos {
	return append([]TilePos(nil), g.dirty.Values()...)
}

func (g *Grid) clearDirty() {
	g.dirty.Clear()
}

// Each calls fn for every occupied cell in row-major order.
func (g *Grid) Each(fn func(p TilePos, c *Cell)) {
	for i := range g.cells {
		if !g.cells[i].Occupied {
			continue
		}
		fn(g.posOf(i), &g.cells[i])
	}
}

// Spawn returns the first PlayerSpawn cell in row-major order.
func (g *Grid) Spawn() (TilePos, bool) {
	for i := range g.cells {
		if g.cells[i].Occupied && g.cells[i].Material == PlayerSpawn {
			return g.posOf(i), true
		}
	}
	return TilePos{}, false
}
