package editor

import (
	"reflect"
	"testing"
)

func TestExpandLine(t *testing.T) {
	cases := []struct {
		name     string
		from, to TilePos
		want     []TilePos
	}{
		{
			name: "vertical",
			from: TilePos{X: 2, Y: 2},
			to:   TilePos{X: 2, Y: 6},
			want: []TilePos{{2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}},
		},
		{
			name: "horizontal_backwards",
			from: TilePos{X: 5, Y: 1},
			to:   TilePos{X: 2, Y: 1},
			want: []TilePos{{2, 1}, {3, 1}, {4, 1}, {5, 1}},
		},
		{
			name: "mostly_horizontal_holds_new_y",
			from: TilePos{X: 0, Y: 0},
			to:   TilePos{X: 3, Y: 1},
			want: []TilePos{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
		{
			name: "tie_iterates_y",
			from: TilePos{X: 0, Y: 0},
			to:   TilePos{X: 2, Y: 2},
			want: []TilePos{{2, 0}, {2, 1}, {2, 2}},
		},
		{
			name: "single",
			from: TilePos{X: 4, Y: 4},
			to:   TilePos{X: 4, Y: 4},
			want: []TilePos{{4, 4}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			batch := ExpandLine(c.from, c.to, Wall, 1)
			got := make([]TilePos, 0, len(batch))
			for _, a := range batch {
				if a.Kind != ActionPlaceTile || a.Material != Wall || a.Size != 1 {
					t.Fatalf("unexpected action %v", a)
				}
				got = append(got, a.Pos)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("positions = %v, want %v", got, c.want)
			}
		})
	}
}
