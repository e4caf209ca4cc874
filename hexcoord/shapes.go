// Package hexcoord: deterministic shape generators.
//
// Every generator here is a pure function of its parameters: no grid
// involvement, no randomness, and a fixed enumeration order, so two calls
// with identical arguments always yield identical sequences.
package hexcoord

import "fmt"

// Ring returns the cells at distance exactly radius from center.
//
// Radius 0 yields the single cell {center}. For radius r ≥ 1 the result
// holds exactly 6r cells, starting at the ring's Northeastern corner
// (center + r × the NE direction) and walking each of the six sides
// clockwise. Returns ErrNegativeRadius for radius < 0.
// Complexity: O(radius).
func Ring(center Cube, radius int) ([]Cube, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: ring radius %d", ErrNegativeRadius, radius)
	}
	if radius == 0 {
		return []Cube{center}, nil
	}

	out := make([]Cube, 0, 6*radius)
	for side := 0; side < 6; side++ {
		// Corner of this side, then walk along direction (side+2)%6 so the
		// traversal turns clockwise around the ring.
		cur := center.Add(neighborDirs[side].Scale(radius))
		walk := (side + 2) % 6
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = cur.Neighbor(walk)
		}
	}

	return out, nil
}

// Spiral returns the filled hexagonal region of the given radius around
// center: the concatenation of rings 0..radius, innermost first, each ring
// in Ring order. The result holds exactly 3r²+3r+1 cells, every one at
// distance ≤ radius from center. Returns ErrNegativeRadius for radius < 0.
// Complexity: O(radius²).
func Spiral(center Cube, radius int) ([]Cube, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: spiral radius %d", ErrNegativeRadius, radius)
	}

	out := make([]Cube, 0, 3*radius*radius+3*radius+1)
	for r := 0; r <= radius; r++ {
		ring, err := Ring(center, r)
		if err != nil {
			return nil, err
		}
		out = append(out, ring...)
	}

	return out, nil
}

// Rectangle returns the cells of a cols × rows rectangular map under the
// given offset parity convention, enumerated row-major: row 0 first, each
// row left to right from col 0. Returns ErrEmptyShape when either dimension
// is not positive.
// Complexity: O(cols × rows).
func Rectangle(cols, rows int, layout OffsetLayout) ([]Cube, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: rectangle %dx%d", ErrEmptyShape, cols, rows)
	}

	out := make([]Cube, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			out = append(out, Offset{Col: col, Row: row, Layout: layout}.Cube())
		}
	}

	return out, nil
}

// Parallelogram returns the cells spanned by two cube axes: the first axis
// ranges over aMin..aMax, the second over bMin..bMax, and the third
// component is derived from the zero-sum invariant. Enumeration is
// row-major: outer loop over the first axis, inner over the second.
// Returns ErrBadBounds when a minimum exceeds its maximum.
// Complexity: O((aMax-aMin+1) × (bMax-bMin+1)).
func Parallelogram(aMin, aMax, bMin, bMax int, axes AxisPair) ([]Cube, error) {
	if aMin > aMax || bMin > bMax {
		return nil, fmt.Errorf("%w: a[%d..%d] b[%d..%d]", ErrBadBounds, aMin, aMax, bMin, bMax)
	}

	out := make([]Cube, 0, (aMax-aMin+1)*(bMax-bMin+1))
	for a := aMin; a <= aMax; a++ {
		for b := bMin; b <= bMax; b++ {
			switch axes {
			case AxesSQ:
				out = append(out, Cube{y: a, x: b, z: -a - b})
			case AxesRS:
				out = append(out, Cube{z: a, y: b, x: -a - b})
			default: // AxesQR
				out = append(out, Cube{x: a, z: b, y: -a - b})
			}
		}
	}

	return out, nil
}
