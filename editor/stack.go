package editor

// ActionStack is a linear undo/redo history. Entries before cursor are
// applied; entries at or after cursor can be redone.
type ActionStack struct {
	cursor  int
	entries []Reversible[EditBatch]

	// MaxDepth caps the history length. Zero means unlimited.
	MaxDepth int

	lastPos TilePos
	hasLast bool
}

// NewActionStack returns an empty stack holding at most maxDepth batches.
func NewActionStack(maxDepth int) *ActionStack {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &ActionStack{MaxDepth: maxDepth}
}

// Push records a batch and its inverse, dropping any redo branch.
func (s *ActionStack) Push(batch, inverse EditBatch) {
	if s.cursor < len(s.entries) {
		clear(s.entries[s.cursor:])
		s.entries = s.entries[:s.cursor]
	}
	s.entries = append(s.entries, NewReversible(batch, inverse))
	if s.MaxDepth > 0 && len(s.entries) > s.MaxDepth {
		drop := len(s.entries) - s.MaxDepth
		s.entries = append(s.entries[:0], s.entries[drop:]...)
	}
	s.cursor = len(s.entries)
	s.lastPos, s.hasLast = batch.LastPosition()
}

// Undo steps back and returns the inverse batch to apply. ok is false when
// there is nothing to undo.
func (s *ActionStack) Undo() (EditBatch, bool) {
	if s.cursor == 0 {
		return nil, false
	}
	s.cursor--
	return s.entries[s.cursor].Undo, true
}

// Redo returns the forward batch at the cursor and steps forward. ok is false
// when there is nothing to redo.
func (s *ActionStack) Redo() (EditBatch, bool) {
	if s.cursor >= len(s.entries) {
		return nil, false
	}
	batch := s.entries[s.cursor].Value
	s.cursor++
	return batch, true
}

// LastPosition is the last tile touched by the most recently pushed batch.
func (s *ActionStack) LastPosition() (TilePos, bool) {
	return s.lastPos, s.hasLast
}

func (s *ActionStack) Len() int {
	return len(s.entries)
}

func (s *ActionStack) Cursor() int {
	return s.cursor
}

func (s *ActionStack) CanUndo() bool {
	return s.cursor > 0
}

func (s *ActionStack) CanRedo() bool {
	return s.cursor < len(s.entries)
}

// Reset empties the history.
func (s *ActionStack) Reset() {
	s.entries = nil
	s.cursor = 0
	s.lastPos = TilePos{}
	s.hasLast = false
}
