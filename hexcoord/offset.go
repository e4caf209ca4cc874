package hexcoord

import "fmt"

// Offset is the screen-intuitive col/row coordinate for rectangular maps.
//
// Offset coordinates shove alternating rows (or columns) sideways to pack
// hexes into a rectangle, so converting to cube requires knowing which rows
// or columns were shoved: the parity convention. The Layout field carries
// that convention in the value — it is chosen once per map and applied
// uniformly, never inferred.
type Offset struct {
	Col, Row int
	Layout   OffsetLayout
}

// NewOffset builds an Offset with the given parity convention. Every
// (col, row) pair is a valid cell under every layout, so there is nothing
// to validate; the constructor exists for symmetry with the other systems.
func NewOffset(col, row int, layout OffsetLayout) Offset {
	return Offset{Col: col, Row: row, Layout: layout}
}

// String renders the coordinate as "Offset(col, row, layout)".
func (o Offset) String() string {
	return fmt.Sprintf("Offset(%d, %d, %s)", o.Col, o.Row, o.Layout)
}

// Cube converts the offset coordinate to the canonical cube form using the
// parity-dependent shift for its layout. The conversion is total once the
// layout is fixed, and lossless: Cube().Offset(o.Layout) round-trips.
//
// The &1 parity masks operate on two's complement values, so negative odd
// cols and rows shift exactly like positive ones.
// Complexity: O(1).
func (o Offset) Cube() Cube {
	var x, z int
	switch o.Layout {
	case OddRow:
		x = o.Col - (o.Row-(o.Row&1))/2
		z = o.Row
	case EvenRow:
		x = o.Col - (o.Row+(o.Row&1))/2
		z = o.Row
	case OddCol:
		x = o.Col
		z = o.Row - (o.Col-(o.Col&1))/2
	default: // EvenCol
		x = o.Col
		z = o.Row - (o.Col+(o.Col&1))/2
	}

	return Cube{x: x, y: -x - z, z: z}
}

// Offset converts the cube coordinate to the requested offset layout,
// applying the inverse parity-dependent shift.
// Complexity: O(1).
func (c Cube) Offset(layout OffsetLayout) Offset {
	var col, row int
	switch layout {
	case OddRow:
		col = c.x + (c.z-(c.z&1))/2
		row = c.z
	case EvenRow:
		col = c.x + (c.z+(c.z&1))/2
		row = c.z
	case OddCol:
		col = c.x
		row = c.z + (c.x-(c.x&1))/2
	default: // EvenCol
		col = c.x
		row = c.z + (c.x+(c.x&1))/2
	}

	return Offset{Col: col, Row: row, Layout: layout}
}

// Neighbors returns all six edge-adjacent offset coordinates in the same
// layout, NE first, proceeding clockwise. Routed through the cube hub so
// that all four parity variants share one neighbor convention instead of
// four hand-maintained shift tables.
func (o Offset) Neighbors() []Offset {
	cubes := o.Cube().Neighbors()
	out := make([]Offset, len(cubes))
	for i, c := range cubes {
		out[i] = c.Offset(o.Layout)
	}

	return out
}

// Distance returns the exact hex distance between o and p, routed through
// the cube hub. The two values may use different layouts.
func (o Offset) Distance(p Offset) int {
	return o.Cube().Distance(p.Cube())
}
