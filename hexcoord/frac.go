package hexcoord

import (
	"fmt"
	"math"
)

// FracCube is a fractional cube coordinate: the intermediate result of
// interpolation or pixel picking, before snapping back onto the lattice.
// FracCube carries no invariant of its own; Round restores the zero-sum
// constraint exactly.
type FracCube struct {
	X, Y, Z float64
}

// String renders the coordinate as "FracCube(x, y, z)".
func (f FracCube) String() string {
	return fmt.Sprintf("FracCube(%g, %g, %g)", f.X, f.Y, f.Z)
}

// Round snaps the fractional coordinate to the nearest valid cube cell.
//
// All three components are rounded independently, then the component with
// the largest rounding error is recomputed as the negation of the other
// two. The result therefore always satisfies x+y+z == 0 exactly, even when
// naive rounding would break it.
// Complexity: O(1).
func (f FracCube) Round() Cube {
	rx := int(math.Round(f.X))
	ry := int(math.Round(f.Y))
	rz := int(math.Round(f.Z))

	dx := math.Abs(float64(rx) - f.X)
	dy := math.Abs(float64(ry) - f.Y)
	dz := math.Abs(float64(rz) - f.Z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return Cube{x: rx, y: ry, z: rz}
}

// Lerp linearly interpolates between two cube coordinates. t == 0 yields a,
// t == 1 yields b; values in between land off-lattice and are meant to be
// snapped with Round.
func Lerp(a, b Cube, t float64) FracCube {
	return FracCube{
		X: float64(a.x) + (float64(b.x)-float64(a.x))*t,
		Y: float64(a.y) + (float64(b.y)-float64(a.y))*t,
		Z: float64(a.z) + (float64(b.z)-float64(a.z))*t,
	}
}

// Line returns the contiguous sequence of cells from a to b inclusive,
// produced by sampling Distance(a,b)+1 evenly spaced points along the
// segment and rounding each onto the lattice. Consecutive results are
// always lattice-adjacent. Line(a, a) yields the single cell a.
//
// The endpoints are nudged by a tiny epsilon before sampling so that points
// landing exactly on a cell boundary break ties consistently instead of
// alternating sides along the segment.
// Complexity: O(Distance(a, b)).
func Line(a, b Cube) []Cube {
	n := a.Distance(b)
	if n == 0 {
		return []Cube{a}
	}

	af := FracCube{X: float64(a.x) + 1e-6, Y: float64(a.y) + 2e-6, Z: float64(a.z) - 3e-6}
	bf := FracCube{X: float64(b.x) + 1e-6, Y: float64(b.y) + 2e-6, Z: float64(b.z) - 3e-6}

	out := make([]Cube, 0, n+1)
	step := 1.0 / float64(n)
	for i := 0; i <= n; i++ {
		t := step * float64(i)
		out = append(out, FracCube{
			X: af.X + (bf.X-af.X)*t,
			Y: af.Y + (bf.Y-af.Y)*t,
			Z: af.Z + (bf.Z-af.Z)*t,
		}.Round())
	}

	return out
}
