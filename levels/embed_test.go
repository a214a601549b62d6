package levels

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/milk9111/rugman/editor"
)

func TestLoadDefaultLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("default.json")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	g := lvl.Grid()
	if g.Width() != 20 || g.Height() != 12 {
		t.Fatalf("grid = %s", g)
	}
	spawn, ok := g.Spawn()
	if !ok || spawn != (editor.TilePos{X: 3, Y: 2}) {
		t.Fatalf("spawn = %v ok=%v", spawn, ok)
	}
	if !reflect.DeepEqual(Encode(g), lvl.Rows) {
		t.Fatalf("encode should reproduce the layout:\n%s", Text(g))
	}
}

func TestLevelGridHolesAndPadding(t *testing.T) {
	lvl := &Level{Width: 4, Height: 3, Rows: []string{"# @", "#"}}
	if err := lvl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	g := lvl.Grid()
	if _, ok := g.Lookup(editor.TilePos{X: 1, Y: 0}); ok {
		t.Fatalf("space should leave no cell")
	}
	want := []string{"# @.", "#...", "...."}
	if got := Encode(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("encode = %q, want %q", got, want)
	}
}

func TestLevelValidate(t *testing.T) {
	cases := []struct {
		name    string
		lvl     Level
		wantDim bool
	}{
		{"zero_width", Level{Width: 0, Height: 1}, true},
		{"too_many_rows", Level{Width: 1, Height: 1, Rows: []string{".", "."}}, true},
		{"row_too_wide", Level{Width: 1, Height: 1, Rows: []string{".."}}, true},
		{"bad_glyph", Level{Width: 2, Height: 1, Rows: []string{".x"}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.lvl.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := errors.Is(err, ErrBadDimensions); got != c.wantDim {
				t.Fatalf("errors.Is(ErrBadDimensions) = %v, want %v (%v)", got, c.wantDim, err)
			}
		})
	}
}

func TestLoadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	body := `{"width": 3, "height": 2, "rows": ["###", "#@#"]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err := LoadLevelFile(path)
	if err != nil {
		t.Fatalf("LoadLevelFile: %v", err)
	}
	if _, ok := lvl.Grid().Spawn(); !ok {
		t.Fatalf("expected spawn")
	}

	if _, err := LoadLevelFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
