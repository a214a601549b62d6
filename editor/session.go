package editor

import (
	"github.com/milk9111/rugman/ecs"
	"github.com/milk9111/rugman/logger"
)

// Mode is the session's top-level state.
type Mode int

const (
	ModeEdit Mode = iota
	ModePlay
)

func (m Mode) String() string {
	if m == ModePlay {
		return "play"
	}
	return "edit"
}

// Stamper produces a batch of placements around origin, e.g. from a script.
type Stamper interface {
	Stamp(origin TilePos, brush Brush) (EditBatch, error)
}

// View is the read-only state handed to the overlay once per frame.
type View struct {
	Frame     uint64
	Mode      Mode
	Brush     Brush
	CanUndo   bool
	CanRedo   bool
	Cursor    TilePos
	HasCursor bool
}

// Overlay receives the UI stage of every frame.
type Overlay interface {
	Sync(v View)
}

type requestKind int

const (
	requestBatch requestKind = iota
	requestBegin
	requestStroke
	requestEnd
	requestBrush
	requestMode
)

type request struct {
	kind  requestKind
	batch EditBatch
	brush EditAction
}

type historyOp int

const (
	opUndo historyOp = iota
	opRedo
)

// gesture accumulates one drag until the button is released.
type gesture struct {
	applied EditBatch
	inverse EditBatch
}

// Options configures a new Session.
type Options struct {
	MaxDepth int
	Brush    Brush
	Keys     Keymap
	Resolver *Resolver
}

func DefaultOptions() Options {
	return Options{Brush: DefaultBrush(), Keys: DefaultKeymap()}
}

// Session is the editor state for one level. Tick must be called from a
// single goroutine once per frame.
type Session struct {
	Grid     *Grid
	Brush    Brush
	Stack    *ActionStack
	Resolver *Resolver
	Keys     Keymap

	mode    Mode
	stamper Stamper
	overlay Overlay

	requests ecs.EventQueue[request]
	history  ecs.EventQueue[historyOp]

	open        *gesture
	painting    bool
	paintButton MouseButton
	lastStroke  TilePos

	input     Input
	cursor    TilePos
	hasCursor bool
	frame     uint64
	refreshes int

	pipeline *ecs.Scheduler[*Session]
}

// NewSession wraps grid and resolves its sprites once.
func NewSession(grid *Grid, opts Options) *Session {
	if grid == nil {
		grid = NewGrid(0, 0)
	}
	if opts.Resolver == nil {
		opts.Resolver = NewResolver()
	}
	if opts.Brush.Size == 0 {
		opts.Brush = DefaultBrush()
	}
	s := &Session{
		Grid:     grid,
		Brush:    opts.Brush,
		Stack:    NewActionStack(opts.MaxDepth),
		Resolver: opts.Resolver,
		Keys:     opts.Keys,
	}
	s.pipeline = ecs.NewScheduler[*Session](
		ecs.SystemFunc[*Session](captureInput),
		ecs.SystemFunc[*Session](applyRequests),
		ecs.SystemFunc[*Session](applyHistory),
		ecs.SystemFunc[*Session](refreshBoard),
		ecs.SystemFunc[*Session](syncOverlay),
	)
	s.Resolver.RefreshBoard(s.Grid)
	return s
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Frame() uint64 {
	return s.frame
}

func (s *Session) Refreshes() int {
	return s.refreshes
}

func (s *Session) SetStamper(st Stamper) {
	s.stamper = st
}

func (s *Session) SetOverlay(o Overlay) {
	s.overlay = o
}

// Tick runs one frame: input capture, edit application, undo/redo, board
// refresh and UI sync, in that order. in may be nil.
func (s *Session) Tick(in Input) {
	s.frame++
	s.input = in
	s.pipeline.Update(s)
	s.input = nil
}

// Queue schedules a batch to be committed as one history entry next frame.
func (s *Session) Queue(batch EditBatch) {
	if len(batch) == 0 {
		return
	}
	s.requests.Push(request{kind: requestBatch, batch: batch})
}

// QueueBrush schedules a SetMaterial or SetSize action.
func (s *Session) QueueBrush(a EditAction) {
	s.requests.Push(request{kind: requestBrush, brush: a})
}

func (s *Session) RequestUndo() {
	s.history.Push(opUndo)
}

func (s *Session) RequestRedo() {
	s.history.Push(opRedo)
}

func (s *Session) RequestToggleMode() {
	s.requests.Push(request{kind: requestMode})
}

// Teardown drops history, pending events and any open gesture.
func (s *Session) Teardown() {
	s.Stack.Reset()
	s.requests.Flush()
	s.history.Flush()
	s.open = nil
	s.painting = false
}

func captureInput(s *Session) {
	in := s.input
	if in == nil {
		return
	}
	k := s.Keys
	s.cursor, s.hasCursor = in.CursorTile()

	if in.KeyJustPressed(k.ToggleMode) {
		s.RequestToggleMode()
	}
	if s.mode != ModeEdit {
		return
	}

	if in.KeyPressed(k.Modifier) {
		switch {
		case in.KeyJustPressed(k.Undo) && in.KeyPressed(k.Range):
			s.RequestRedo()
		case in.KeyJustPressed(k.Undo):
			s.RequestUndo()
		case in.KeyJustPressed(k.Redo):
			s.RequestRedo()
		}
	} else {
		switch {
		case in.KeyJustPressed(k.Wall):
			s.QueueBrush(SetMaterial(Wall))
		case in.KeyJustPressed(k.Floor):
			s.QueueBrush(SetMaterial(Floor))
		case in.KeyJustPressed(k.Spawn):
			s.QueueBrush(SetMaterial(PlayerSpawn))
		}
		if in.KeyJustPressed(k.SizeDown) {
			s.QueueBrush(SetSize(s.Brush.Size - 1))
		}
		if in.KeyJustPressed(k.SizeUp) {
			s.QueueBrush(SetSize(s.Brush.Size + 1))
		}
	}

	if s.painting && in.MouseJustReleased(s.paintButton) {
		s.requests.Push(request{kind: requestEnd})
		s.painting = false
	}
	if !s.hasCursor {
		return
	}
	pos := s.cursor

	if s.stamper != nil && in.KeyJustPressed(k.Stamp) {
		batch, err := s.stamper.Stamp(pos, s.Brush)
		if err != nil {
			logger.Error("editor: stamp failed", "pos", pos.String(), "err", err)
		} else {
			s.Queue(batch)
		}
	}

	for _, b := range []MouseButton{MouseLeft, MouseRight} {
		if !in.MouseJustPressed(b) {
			continue
		}
		material := s.Brush.Material
		if b == MouseRight {
			material = Floor
		}
		if last, ok := s.Stack.LastPosition(); ok && in.KeyPressed(k.Range) {
			s.Queue(ExpandLine(last, pos, material, s.Brush.Size))
			return
		}
		s.requests.Push(request{kind: requestBegin, batch: EditBatch{PlaceTile(pos, material, s.Brush.Size)}})
		s.painting = true
		s.paintButton = b
		s.lastStroke = pos
		return
	}

	if s.painting && in.MousePressed(s.paintButton) && pos != s.lastStroke {
		material := s.Brush.Material
		if s.paintButton == MouseRight {
			material = Floor
		}
		s.requests.Push(request{kind: requestStroke, batch: EditBatch{PlaceTile(pos, material, s.Brush.Size)}})
		s.lastStroke = pos
	}
}

func applyRequests(s *Session) {
	for _, req := range s.requests.Drain() {
		switch req.kind {
		case requestBatch:
			s.closeGesture()
			applied, inverse := CommitBatch(s.Grid, req.batch)
			if len(applied) > 0 {
				s.Stack.Push(applied, inverse)
			}
		case requestBegin:
			s.closeGesture()
			s.open = &gesture{}
			s.strokeGesture(req.batch)
		case requestStroke:
			if s.open == nil {
				s.open = &gesture{}
			}
			s.strokeGesture(req.batch)
		case requestEnd:
			s.closeGesture()
		case requestBrush:
			s.Brush.Apply(req.brush)
		case requestMode:
			s.closeGesture()
			s.painting = false
			if s.mode == ModeEdit {
				s.mode = ModePlay
			} else {
				s.mode = ModeEdit
			}
			logger.Info("editor: mode changed", "mode", s.mode.String())
		}
	}
}

func (s *Session) strokeGesture(batch EditBatch) {
	applied, inverse := CommitBatch(s.Grid, batch)
	s.open.applied = append(s.open.applied, applied...)
	s.open.inverse = append(inverse, s.open.inverse...)
}

func (s *Session) closeGesture() {
	g := s.open
	s.open = nil
	if g == nil || len(g.applied) == 0 {
		return
	}
	s.Stack.Push(g.applied, g.inverse)
}

func applyHistory(s *Session) {
	ops := s.history.Drain()
	if len(ops) == 0 {
		return
	}
	s.closeGesture()
	for _, op := range ops {
		var (
			batch EditBatch
			ok    bool
		)
		if op == opUndo {
			batch, ok = s.Stack.Undo()
		} else {
			batch, ok = s.Stack.Redo()
		}
		if !ok {
			continue
		}
		ApplyBatch(s.Grid, batch)
		logger.Debug("editor: history step", "undo", op == opUndo, "cursor", s.Stack.Cursor(), "actions", len(batch))
	}
}

func refreshBoard(s *Session) {
	if s.Grid.DirtyCount() == 0 {
		return
	}
	s.Resolver.RefreshBoard(s.Grid)
	s.refreshes++
}

func syncOverlay(s *Session) {
	if s.overlay == nil {
		return
	}
	s.overlay.Sync(View{
		Frame:     s.frame,
		Mode:      s.mode,
		Brush:     s.Brush,
		CanUndo:   s.Stack.CanUndo(),
		CanRedo:   s.Stack.CanRedo(),
		Cursor:    s.cursor,
		HasCursor: s.hasCursor,
	})
}
