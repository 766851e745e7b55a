package curve

import "slices"

// EntangleAll appends the tangle of each (xs[i], ys[i]) to dst.
//
// xs and ys must have the same length.
func EntangleAll(t Tangler, xs, ys []uint32, dst []uint64) []uint64 {
	if len(xs) != len(ys) {
		panic("curve: EntangleAll coordinate slices differ in length")
	}
	dst = slices.Grow(dst, len(xs))
	for i := range xs {
		dst = append(dst, t.Entangle(xs[i], ys[i]))
	}
	return dst
}

// DetangleAll appends the coordinates of each tangle to xs and ys.
//
// Passing a *BytewiseCached as t is the intended way to decode a sorted run.
func DetangleAll(t Tangler, tangles []uint64, xs, ys []uint32) ([]uint32, []uint32) {
	xs = slices.Grow(xs, len(tangles))
	ys = slices.Grow(ys, len(tangles))
	for _, tangle := range tangles {
		x, y := t.Detangle(tangle)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
