package playtest

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rugman/editor"
	"github.com/milk9111/rugman/logger"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	playerScale = 0.8
	playerSpeed = 6.0 // tiles per second
)

// Space is a top-down collision world built from a snapshot of the grid.
// Edits made after New are not reflected; the host rebuilds it on each
// switch into play mode.
type Space struct {
	space    *cp.Space
	tileSize float64

	playerBody  *cp.Body
	playerShape *cp.Shape

	touching bool
}

// MergeWalls greedily covers wall cells with rectangles, widest first, then
// as tall as the row span allows. Rectangles are in tile units: L/R are
// columns and B/T are rows, T exclusive.
func MergeWalls(g *editor.Grid) []cp.BB {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return nil
	}
	solid := func(x, y int) bool {
		c, ok := g.Lookup(editor.TilePos{X: x, Y: y})
		return ok && c.Material == editor.Wall
	}

	var out []cp.BB
	processed := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if processed[idx] {
				continue
			}
			if !solid(x, y) {
				processed[idx] = true
				continue
			}

			rw := 1
			for x+rw < w && !processed[y*w+x+rw] && solid(x+rw, y) {
				rw++
			}

			rh := 1
		heightLoop:
			for y+rh < h {
				for xi := x; xi < x+rw; xi++ {
					if processed[(y+rh)*w+xi] || !solid(xi, y+rh) {
						break heightLoop
					}
				}
				rh++
			}

			for yy := y; yy < y+rh; yy++ {
				for xx := x; xx < x+rw; xx++ {
					processed[yy*w+xx] = true
				}
			}
			out = append(out, cp.BB{L: float64(x), B: float64(y), R: float64(x + rw), T: float64(y + rh)})
		}
	}
	return out
}

// New builds a zero gravity space with the merged walls, world bounds and a
// player box at the first spawn cell, or the grid centre when there is none.
func New(g *editor.Grid, tileSize int) *Space {
	if tileSize <= 0 {
		tileSize = 1
	}
	ts := float64(tileSize)
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: 0})
	s := &Space{space: space, tileSize: ts}

	walls := MergeWalls(g)
	for _, r := range walls {
		bb := cp.BB{L: r.L * ts, B: r.B * ts, R: r.R * ts, T: r.T * ts}
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		space.AddShape(shape)
	}
	s.addBounds(float64(g.Width())*ts, float64(g.Height())*ts)

	start, ok := g.Spawn()
	if !ok {
		start = editor.TilePos{X: g.Width() / 2, Y: g.Height() / 2}
	}
	s.attachPlayer(start)
	s.setupHandlers()

	logger.Debug("playtest: space built", "walls", len(walls), "spawn", start.String())
	return s
}

func (s *Space) addBounds(worldW, worldH float64) {
	if worldW <= 0 || worldH <= 0 {
		return
	}
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(s.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		s.space.AddShape(shape)
	}
}

func (s *Space) attachPlayer(at editor.TilePos) {
	size := s.tileSize * playerScale
	// Infinite moment keeps the box axis aligned.
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(s.tileCentre(at))
	shape := cp.NewBox(body, size, size, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.playerBody = body
	s.playerShape = shape
}

func (s *Space) setupHandlers() {
	handler := s.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.UserData = s
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if world, ok := userData.(*Space); ok && world != nil {
			world.touching = true
		}
		return true
	}
}

func (s *Space) tileCentre(p editor.TilePos) cp.Vector {
	return cp.Vector{X: (float64(p.X) + 0.5) * s.tileSize, Y: (float64(p.Y) + 0.5) * s.tileSize}
}

// Move sets the player's velocity from a direction in tiles; (1, 0) walks
// east at full speed.
func (s *Space) Move(dx, dy float64) {
	if s == nil || s.playerBody == nil {
		return
	}
	speed := playerSpeed * s.tileSize
	s.playerBody.SetVelocity(dx*speed, dy*speed)
}

func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil {
		return
	}
	s.touching = false
	s.space.Step(dt)
}

// PlayerPosition returns the centre of the player box in pixels.
func (s *Space) PlayerPosition() cp.Vector {
	if s == nil || s.playerBody == nil {
		return cp.Vector{}
	}
	return s.playerBody.Position()
}

// PlayerTile returns the tile under the player's centre.
func (s *Space) PlayerTile() editor.TilePos {
	p := s.PlayerPosition()
	return editor.TilePos{X: int(math.Floor(p.X / s.tileSize)), Y: int(math.Floor(p.Y / s.tileSize))}
}

// PlayerSize is the side of the player box in pixels.
func (s *Space) PlayerSize() float64 {
	return s.tileSize * playerScale
}

// Touching reports whether the player pressed against a wall during the last
// Step.
func (s *Space) Touching() bool {
	return s != nil && s.touching
}
