package editor

import "fmt"

// ActionKind tags the EditAction variant.
type ActionKind int

const (
	ActionSetMaterial ActionKind = iota + 1
	ActionSetSize
	ActionPlaceTile
)

// EditAction is one edit. Only the fields of its Kind are meaningful:
// SetMaterial uses Material, SetSize uses Size, PlaceTile uses all three.
type EditAction struct {
	Kind     ActionKind
	Pos      TilePos
	Material TileMaterial
	Size     int
}

func SetMaterial(m TileMaterial) EditAction {
	return EditAction{Kind: ActionSetMaterial, Material: m}
}

func SetSize(size int) EditAction {
	return EditAction{Kind: ActionSetSize, Size: size}
}

func PlaceTile(pos TilePos, m TileMaterial, size int) EditAction {
	return EditAction{Kind: ActionPlaceTile, Pos: pos, Material: m, Size: size}
}

func (a EditAction) String() string {
	switch a.Kind {
	case ActionSetMaterial:
		return fmt.Sprintf("SetMaterial(%s)", a.Material)
	case ActionSetSize:
		return fmt.Sprintf("SetSize(%d)", a.Size)
	case ActionPlaceTile:
		return fmt.Sprintf("PlaceTile(%s, %s, %d)", a.Pos, a.Material, a.Size)
	default:
		return "EditAction(?)"
	}
}

// EditBatch groups actions applied and undone as one unit.
type EditBatch []EditAction

// LastPosition returns the position of the last PlaceTile in the batch.
func (b EditBatch) LastPosition() (TilePos, bool) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i].Kind == ActionPlaceTile {
			return b[i].Pos, true
		}
	}
	return TilePos{}, false
}

// Reversible pairs a value with its precomputed inverse.
type Reversible[T any] struct {
	Value T
	Undo  T
}

func NewReversible[T any](value, undo T) Reversible[T] {
	return Reversible[T]{Value: value, Undo: undo}
}
