package editor

import (
	"reflect"
	"testing"
)

func place(x, y int, m TileMaterial) EditBatch {
	return EditBatch{PlaceTile(TilePos{X: x, Y: y}, m, 1)}
}

func TestActionStackEmpty(t *testing.T) {
	s := NewActionStack(0)
	if _, ok := s.Undo(); ok {
		t.Fatalf("undo on empty stack should report nothing to undo")
	}
	if _, ok := s.Redo(); ok {
		t.Fatalf("redo on empty stack should report nothing to redo")
	}
	if _, ok := s.LastPosition(); ok {
		t.Fatalf("empty stack should have no last position")
	}
	if s.Cursor() != 0 || s.Len() != 0 {
		t.Fatalf("cursor=%d len=%d, want 0/0", s.Cursor(), s.Len())
	}
}

func TestActionStackUndoRedo(t *testing.T) {
	s := NewActionStack(0)
	s.Push(place(1, 1, Wall), place(1, 1, Floor))
	s.Push(place(2, 2, Wall), place(2, 2, Floor))

	undo, ok := s.Undo()
	if !ok || !reflect.DeepEqual(undo, place(2, 2, Floor)) {
		t.Fatalf("undo = %v ok=%v", undo, ok)
	}
	if s.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", s.Cursor())
	}

	redo, ok := s.Redo()
	if !ok || !reflect.DeepEqual(redo, place(2, 2, Wall)) {
		t.Fatalf("redo = %v ok=%v", redo, ok)
	}
	if _, ok := s.Redo(); ok {
		t.Fatalf("redo at end of history should fail")
	}
}

func TestActionStackRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		s := NewActionStack(0)
		for i := 0; i < n; i++ {
			s.Push(place(i, 0, Wall), place(i, 0, Floor))
		}
		before := append([]Reversible[EditBatch](nil), s.entries...)

		for i := 0; i < n; i++ {
			if _, ok := s.Undo(); !ok {
				t.Fatalf("n=%d: undo %d failed", n, i)
			}
		}
		if _, ok := s.Undo(); ok {
			t.Fatalf("n=%d: undo past start should fail", n)
		}
		for i := 0; i < n; i++ {
			if _, ok := s.Redo(); !ok {
				t.Fatalf("n=%d: redo %d failed", n, i)
			}
		}
		if s.Cursor() != n || !reflect.DeepEqual(before, s.entries) {
			t.Fatalf("n=%d: round trip changed the stack", n)
		}
	}
}

func TestActionStackPushDiscardsRedoBranch(t *testing.T) {
	s := NewActionStack(0)
	s.Push(place(0, 0, Wall), place(0, 0, Floor))
	s.Push(place(1, 0, Wall), place(1, 0, Floor))
	s.Push(place(2, 0, Wall), place(2, 0, Floor))

	s.Undo()
	s.Undo()
	s.Push(place(9, 9, PlayerSpawn), place(9, 9, Floor))

	if s.Len() != 2 || s.Cursor() != 2 {
		t.Fatalf("len=%d cursor=%d, want 2/2", s.Len(), s.Cursor())
	}
	if _, ok := s.Redo(); ok {
		t.Fatalf("redo after push must not resurrect discarded batches")
	}
	undo, _ := s.Undo()
	if !reflect.DeepEqual(undo, place(9, 9, Floor)) {
		t.Fatalf("undo = %v", undo)
	}
	undo, _ = s.Undo()
	if !reflect.DeepEqual(undo, place(0, 0, Floor)) {
		t.Fatalf("undo = %v", undo)
	}
}

func TestActionStackLastPosition(t *testing.T) {
	s := NewActionStack(0)
	s.Push(EditBatch{
		PlaceTile(TilePos{X: 1, Y: 1}, Wall, 1),
		PlaceTile(TilePos{X: 4, Y: 2}, Wall, 1),
	}, nil)
	pos, ok := s.LastPosition()
	if !ok || pos != (TilePos{X: 4, Y: 2}) {
		t.Fatalf("last = %v ok=%v", pos, ok)
	}

	s.Push(EditBatch{SetMaterial(Floor)}, nil)
	if _, ok := s.LastPosition(); ok {
		t.Fatalf("batch without placements should clear last position")
	}
}

func TestActionStackMaxDepth(t *testing.T) {
	s := NewActionStack(2)
	for i := 0; i < 4; i++ {
		s.Push(place(i, 0, Wall), place(i, 0, Floor))
	}
	if s.Len() != 2 || s.Cursor() != 2 {
		t.Fatalf("len=%d cursor=%d, want 2/2", s.Len(), s.Cursor())
	}
	undo, _ := s.Undo()
	if !reflect.DeepEqual(undo, place(3, 0, Floor)) {
		t.Fatalf("newest undo = %v", undo)
	}
	undo, _ = s.Undo()
	if !reflect.DeepEqual(undo, place(2, 0, Floor)) {
		t.Fatalf("oldest kept undo = %v", undo)
	}
	if s.CanUndo() {
		t.Fatalf("dropped entries should not be undoable")
	}
}

func TestActionStackReset(t *testing.T) {
	s := NewActionStack(0)
	s.Push(place(0, 0, Wall), place(0, 0, Floor))
	s.Reset()
	if s.CanUndo() || s.CanRedo() || s.Len() != 0 {
		t.Fatalf("reset should empty the stack")
	}
	if _, ok := s.LastPosition(); ok {
		t.Fatalf("reset should clear last position")
	}
}
