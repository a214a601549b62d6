package editor

import "github.com/milk9111/rugman/logger"

const maxBrushSize = 9

// Brush is the material and size used to stamp new edits.
type Brush struct {
	Material TileMaterial
	Size     int
}

func DefaultBrush() Brush {
	return Brush{Material: Wall, Size: 1}
}

// Apply updates the brush for SetMaterial and SetSize actions and reports
// whether the action was a brush action.
func (b *Brush) Apply(a EditAction) bool {
	switch a.Kind {
	case ActionSetMaterial:
		b.Material = a.Material
		return true
	case ActionSetSize:
		b.Size = clampSize(a.Size)
		return true
	default:
		return false
	}
}

func clampSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > maxBrushSize {
		return maxBrushSize
	}
	return size
}

// Commit applies a single-cell action to the grid and returns the action that
// was applied and its inverse. Placing on a missing cell changes nothing and
// the inverse is the action itself.
func Commit(g *Grid, a EditAction) (applied, inverse EditAction) {
	if a.Kind != ActionPlaceTile {
		return a, a
	}
	prev, ok := g.setMaterial(a.Pos, a.Material)
	if !ok {
		logger.Debug("editor: place on missing cell", "pos", a.Pos.String(), "material", a.Material.String())
		return a, a
	}
	return a, PlaceTile(a.Pos, prev, a.Size)
}

// Stamp expands a PlaceTile with Size > 1 into one size-1 action per covered
// cell. The square's top-left corner is Pos - (Size-1)/2.
func Stamp(a EditAction) EditBatch {
	if a.Kind != ActionPlaceTile {
		return nil
	}
	size := clampSize(a.Size)
	if size == 1 {
		return EditBatch{PlaceTile(a.Pos, a.Material, 1)}
	}
	off := (size - 1) / 2
	out := make(EditBatch, 0, size*size)
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			pos := TilePos{X: a.Pos.X - off + dx, Y: a.Pos.Y - off + dy}
			out = append(out, PlaceTile(pos, a.Material, 1))
		}
	}
	return out
}

// CommitBatch stamps and commits every action in order. Missing cells are
// dropped from both results. The inverse is in reverse order so that applying
// it restores cells touched more than once.
func CommitBatch(g *Grid, batch EditBatch) (applied, inverse EditBatch) {
	for _, a := range batch {
		for _, cell := range Stamp(a) {
			if _, ok := g.Lookup(cell.Pos); !ok {
				Commit(g, cell)
				continue
			}
			done, undo := Commit(g, cell)
			applied = append(applied, done)
			inverse = append(inverse, undo)
		}
	}
	for i, j := 0, len(inverse)-1; i < j; i, j = i+1, j-1 {
		inverse[i], inverse[j] = inverse[j], inverse[i]
	}
	return applied, inverse
}

// ApplyBatch replays a recorded batch as-is, e.g. for undo and redo.
func ApplyBatch(g *Grid, batch EditBatch) {
	for _, a := range batch {
		Commit(g, a)
	}
}
