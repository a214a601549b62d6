package script

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/rugman/editor"
	"github.com/milk9111/rugman/logger"
)

const maxPlacements = 4096

var ErrTooManyPlacements = errors.New("script: too many placements")

// Stamper runs a compiled tengo script to produce an edit batch around the
// cursor. The script sees origin_x, origin_y, material and size, and calls
// place(x, y, [material]) for every cell it wants to paint.
type Stamper struct {
	name     string
	compiled *tengo.Compiled
	material editor.TileMaterial
	pending  editor.EditBatch
}

// Load compiles the named script from disk or the embedded scripts.
func Load(name string) (*Stamper, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load stamp script %q: %w", name, err)
	}
	return New(name, src)
}

func New(name string, src []byte) (*Stamper, error) {
	st := &Stamper{name: name}

	s := tengo.NewScript(src)
	_ = s.Add("origin_x", 0)
	_ = s.Add("origin_y", 0)
	_ = s.Add("material", "")
	_ = s.Add("size", 1)
	_ = s.Add("place", &tengo.UserFunction{Name: "place", Value: st.place})
	s.SetImports(stdlib.GetModuleMap("math", "rand", "text"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile stamp script %q: %w", name, err)
	}
	st.compiled = compiled
	logger.Debug("script: compiled stamp", "name", name)
	return st, nil
}

func (st *Stamper) Name() string {
	return st.name
}

// Stamp runs the script once. Nothing is returned on error, so a failing
// script never produces a partial batch.
func (st *Stamper) Stamp(origin editor.TilePos, brush editor.Brush) (editor.EditBatch, error) {
	if st == nil || st.compiled == nil {
		return nil, fmt.Errorf("script: nil stamper")
	}
	st.pending = nil
	st.material = brush.Material

	globals := []struct {
		name  string
		value any
	}{
		{"origin_x", origin.X},
		{"origin_y", origin.Y},
		{"material", brush.Material.String()},
		{"size", brush.Size},
	}
	for _, g := range globals {
		if err := st.compiled.Set(g.name, g.value); err != nil {
			return nil, fmt.Errorf("stamp %q: set %s: %w", st.name, g.name, err)
		}
	}

	if err := st.compiled.Run(); err != nil {
		st.pending = nil
		return nil, fmt.Errorf("stamp %q: %w", st.name, err)
	}

	batch := st.pending
	st.pending = nil
	return batch, nil
}

func (st *Stamper) place(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToInt(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToInt(args[1])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "int", Found: args[1].TypeName()}
	}

	m := st.material
	if len(args) == 3 {
		name, ok := tengo.ToString(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "material", Expected: "string", Found: args[2].TypeName()}
		}
		parsed, err := editor.ParseMaterial(name)
		if err != nil {
			return nil, err
		}
		m = parsed
	}

	if len(st.pending) >= maxPlacements {
		return nil, ErrTooManyPlacements
	}
	st.pending = append(st.pending, editor.PlaceTile(editor.TilePos{X: x, Y: y}, m, 1))
	return tengo.TrueValue, nil
}
