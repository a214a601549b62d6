package editor

import "testing"

// wallWithNeighbours builds a 3x3 floor grid with a wall in the centre and
// walls on the flagged sides (N, E, S, W).
func wallWithNeighbours(flags [4]bool) (*Grid, TilePos) {
	g := NewGrid(3, 3)
	centre := TilePos{X: 1, Y: 1}
	Commit(g, PlaceTile(centre, Wall, 1))
	for i, d := range Clockwise {
		if flags[i] {
			Commit(g, PlaceTile(centre.Add(d.Offset()), Wall, 1))
		}
	}
	return g, centre
}

func TestResolverCanonicalPatterns(t *testing.T) {
	cases := []struct {
		flags [4]bool
		want  TileMapIndex
	}{
		{[4]bool{false, false, false, false}, IndexWallNS},
		{[4]bool{true, false, false, false}, IndexWallN},
		{[4]bool{false, true, false, false}, IndexWallE},
		{[4]bool{false, false, true, false}, IndexWallS},
		{[4]bool{false, false, false, true}, IndexWallW},
		{[4]bool{true, false, true, false}, IndexWallNS},
		{[4]bool{false, true, false, true}, IndexWallEW},
		{[4]bool{false, true, true, false}, IndexWallES},
		{[4]bool{false, false, true, true}, IndexWallSW},
		{[4]bool{true, true, false, false}, IndexWallNE},
		{[4]bool{true, false, false, true}, IndexWallNW},
		{[4]bool{true, true, true, false}, IndexWallNES},
		{[4]bool{false, true, true, true}, IndexWallESW},
		{[4]bool{true, false, true, true}, IndexWallNSW},
		{[4]bool{true, true, false, true}, IndexWallNEW},
		{[4]bool{true, true, true, true}, IndexWallNESW},
	}
	r := NewResolver()
	seen := map[TileMapIndex]Pattern{}
	for _, c := range cases {
		p := PatternOf(c.flags[0], c.flags[1], c.flags[2], c.flags[3])
		t.Run(p.String(), func(t *testing.T) {
			g, centre := wallWithNeighbours(c.flags)
			if got := r.Connectivity(g, centre); got != p {
				t.Fatalf("connectivity = %s, want %s", got, p)
			}
			if got := r.ResolveCell(g, centre); got != c.want {
				t.Fatalf("index = %d, want %d", got, c.want)
			}
		})
		if prev, dup := seen[c.want]; dup && !(p == 0 || prev == 0) {
			t.Fatalf("patterns %s and %s share index %d", prev, p, c.want)
		}
		seen[c.want] = p
	}
}

func TestResolverEmptyPatternAliasesNorthSouth(t *testing.T) {
	r := NewResolver()
	if r.Lookup(0) != r.Lookup(PatternN|PatternS) {
		t.Fatalf("empty pattern should share the north+south sprite")
	}
}

func TestResolverNonWallsUseFixedIndices(t *testing.T) {
	r := NewResolver()
	g, centre := wallWithNeighbours([4]bool{true, true, true, true})

	Commit(g, PlaceTile(centre, Floor, 1))
	if got := r.ResolveCell(g, centre); got != IndexFloor {
		t.Fatalf("floor index = %d", got)
	}
	Commit(g, PlaceTile(centre, PlayerSpawn, 1))
	if got := r.ResolveCell(g, centre); got != IndexPlayerSpawn {
		t.Fatalf("spawn index = %d", got)
	}

	g.SetOccupied(centre, false)
	if got := r.ResolveCell(g, centre); got != IndexUnknown {
		t.Fatalf("missing cell index = %d", got)
	}
}

func TestResolverOnlyWallsConnect(t *testing.T) {
	r := NewResolver()
	g := NewGrid(3, 3)
	centre := TilePos{X: 1, Y: 1}
	Commit(g, PlaceTile(centre, Wall, 1))
	Commit(g, PlaceTile(TilePos{X: 1, Y: 0}, PlayerSpawn, 1))
	g.SetOccupied(TilePos{X: 2, Y: 1}, false)
	Commit(g, PlaceTile(TilePos{X: 1, Y: 2}, Wall, 1))

	if got := r.Connectivity(g, centre); got != PatternS {
		t.Fatalf("connectivity = %s, want S", got)
	}

	// Edge cells probe out of bounds.
	Commit(g, PlaceTile(TilePos{X: 0, Y: 0}, Wall, 1))
	if got := r.Connectivity(g, TilePos{X: 0, Y: 0}); got != 0 {
		t.Fatalf("corner connectivity = %s, want none", got)
	}
}

func TestResolverMissingPatternFallsBackToFloor(t *testing.T) {
	r := NewResolver()
	r.Remove(PatternN | PatternE)
	if got := r.Lookup(PatternN | PatternE); got != IndexFloor {
		t.Fatalf("missing pattern = %d, want floor", got)
	}
	r.Override(PatternN|PatternE, 99)
	if got := r.Lookup(PatternN | PatternE); got != 99 {
		t.Fatalf("override = %d, want 99", got)
	}
}

func TestRefreshBoard(t *testing.T) {
	g := NewGrid(3, 1)
	for x := 0; x < 3; x++ {
		Commit(g, PlaceTile(TilePos{X: x}, Wall, 1))
	}
	r := NewResolver()
	if walls := r.RefreshBoard(g); walls != 3 {
		t.Fatalf("walls = %d, want 3", walls)
	}
	if g.DirtyCount() != 0 {
		t.Fatalf("refresh should clear dirty markers")
	}
	want := []TileMapIndex{IndexWallE, IndexWallEW, IndexWallW}
	for x, idx := range want {
		c, _ := g.Lookup(TilePos{X: x})
		if c.Index != idx {
			t.Fatalf("x=%d index = %d, want %d", x, c.Index, idx)
		}
	}
}

func TestParsePattern(t *testing.T) {
	cases := map[string]Pattern{
		"none":    0,
		"N":       PatternN,
		"n+s":     PatternN | PatternS,
		"W+N+E":   PatternN | PatternE | PatternW,
		"N+E+S+W": PatternN | PatternE | PatternS | PatternW,
	}
	for in, want := range cases {
		got, err := ParsePattern(in)
		if err != nil || got != want {
			t.Fatalf("ParsePattern(%q) = %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParsePattern("N+Q"); err == nil {
		t.Fatalf("expected error for bad pattern")
	}
	if got := (PatternN | PatternE | PatternW).String(); got != "N+E+W" {
		t.Fatalf("String = %q", got)
	}
}
