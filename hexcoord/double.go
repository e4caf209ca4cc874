package hexcoord

import "fmt"

// Double is a rectangle-friendly coordinate with one doubled axis.
//
// Doubling one axis keeps every step between hex centers an integer step in
// both col and row, which aligns cleanly with screen and array layouts. The
// price is a parity invariant: col and row must share parity, otherwise the
// position falls between lattice cells. The Layout field records which axis
// is doubled and is carried in the value.
type Double struct {
	Col, Row int
	Layout   DoubleLayout
}

// NewDouble builds a Double and validates the parity invariant, returning
// ErrDoubleParity when col and row disagree. A parity mismatch is a caller
// bug (the position names no cell), so it is rejected eagerly.
// Complexity: O(1).
func NewDouble(col, row int, layout DoubleLayout) (Double, error) {
	if (col+row)&1 != 0 {
		return Double{}, fmt.Errorf("%w: (%d, %d) %s", ErrDoubleParity, col, row, layout)
	}

	return Double{Col: col, Row: row, Layout: layout}, nil
}

// MustDouble builds a Double and panics on a parity violation. Intended for
// literals in tests and tables.
func MustDouble(col, row int, layout DoubleLayout) Double {
	d, err := NewDouble(col, row, layout)
	if err != nil {
		panic(err)
	}

	return d
}

// String renders the coordinate as "Double(col, row, layout)".
func (d Double) String() string {
	return fmt.Sprintf("Double(%d, %d, %s)", d.Col, d.Row, d.Layout)
}

// Cube converts the double coordinate to the canonical cube form. The
// conversion is total and lossless for every value produced by NewDouble.
// Complexity: O(1).
func (d Double) Cube() Cube {
	var x, z int
	if d.Layout == DoubledWidth {
		x = (d.Col - d.Row) / 2
		z = d.Row
	} else {
		x = d.Col
		z = (d.Row - d.Col) / 2
	}

	return Cube{x: x, y: -x - z, z: z}
}

// Double converts the cube coordinate to the requested doubled layout.
// The result always satisfies the parity invariant.
// Complexity: O(1).
func (c Cube) Double(layout DoubleLayout) Double {
	if layout == DoubledWidth {
		return Double{Col: 2*c.x + c.z, Row: c.z, Layout: DoubledWidth}
	}

	return Double{Col: c.x, Row: 2*c.z + c.x, Layout: DoubledHeight}
}

// Neighbors returns all six edge-adjacent double coordinates in the same
// layout, NE first, proceeding clockwise. Routed through the cube hub so
// that both layouts share one neighbor convention.
func (d Double) Neighbors() []Double {
	cubes := d.Cube().Neighbors()
	out := make([]Double, len(cubes))
	for i, c := range cubes {
		out[i] = c.Double(d.Layout)
	}

	return out
}

// Distance returns the exact hex distance between d and o, routed through
// the cube hub. The two values may use different layouts.
func (d Double) Distance(o Double) int {
	return d.Cube().Distance(o.Cube())
}
