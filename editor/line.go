package editor

// ExpandLine turns a range click into an axis-aligned line of PlaceTile
// actions from `from` to `to`, both ends included, in ascending order. The
// axis with the larger span is iterated and the other coordinate is held at
// to's value; ties iterate y.
func ExpandLine(from, to TilePos, m TileMaterial, size int) EditBatch {
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)

	var out EditBatch
	if dx > dy {
		lo, hi := minMax(from.X, to.X)
		out = make(EditBatch, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			out = append(out, PlaceTile(TilePos{X: x, Y: to.Y}, m, size))
		}
		return out
	}
	lo, hi := minMax(from.Y, to.Y)
	out = make(EditBatch, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		out = append(out, PlaceTile(TilePos{X: to.X, Y: y}, m, size))
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
