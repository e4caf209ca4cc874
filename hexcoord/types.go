// Package hexcoord: shared enums, sentinel errors, and direction tables.
//
// This file declares the layout/parity labels carried by Double and Offset
// values, the sentinel errors returned by constructors and generators, and
// the canonical neighbor/diagonal unit vectors used across the package.
package hexcoord

import "errors"

// Sentinel errors for coordinate construction and shape generation.
var (
	// ErrCubeSum indicates cube components violating x+y+z == 0.
	ErrCubeSum = errors.New("hexcoord: cube coordinate components must sum to zero")

	// ErrDoubleParity indicates a double coordinate whose col and row have
	// mismatched parity; no hex cell exists at such a position.
	ErrDoubleParity = errors.New("hexcoord: double coordinate col and row must share parity")

	// ErrNegativeRadius indicates a negative ring or spiral radius.
	ErrNegativeRadius = errors.New("hexcoord: radius must be non-negative")

	// ErrEmptyShape indicates a rectangle with zero or negative dimensions.
	ErrEmptyShape = errors.New("hexcoord: shape dimensions must be positive")

	// ErrBadBounds indicates a parallelogram whose minimum bound exceeds its maximum.
	ErrBadBounds = errors.New("hexcoord: lower bound exceeds upper bound")
)

// OffsetLayout selects one of the four offset parity conventions.
// The layout is carried inside every Offset value so that a conversion can
// never silently assume the wrong convention.
type OffsetLayout int

const (
	// OddRow shoves odd rows right (pointy-top rectangular maps).
	OddRow OffsetLayout = iota
	// EvenRow shoves even rows right (pointy-top rectangular maps).
	EvenRow
	// OddCol shoves odd columns down (flat-top rectangular maps).
	OddCol
	// EvenCol shoves even columns down (flat-top rectangular maps).
	EvenCol
)

// String returns the conventional name of the layout.
func (l OffsetLayout) String() string {
	switch l {
	case OddRow:
		return "odd-row"
	case EvenRow:
		return "even-row"
	case OddCol:
		return "odd-col"
	case EvenCol:
		return "even-col"
	default:
		return "unknown"
	}
}

// DoubleLayout selects which axis of a Double coordinate is doubled.
type DoubleLayout int

const (
	// DoubledWidth doubles column steps: horizontal neighbors differ by 2 in col.
	DoubledWidth DoubleLayout = iota
	// DoubledHeight doubles row steps: vertical neighbors differ by 2 in row.
	DoubledHeight
)

// String returns the conventional name of the layout.
func (l DoubleLayout) String() string {
	if l == DoubledHeight {
		return "doubled-height"
	}

	return "doubled-width"
}

// neighborDirs holds the six unit vectors toward a cell's edge-adjacent
// neighbors, beginning with the Northeastern side and proceeding clockwise.
// Index arithmetic throughout the package wraps modulo 6.
var neighborDirs = [6]Cube{
	{x: 1, y: 0, z: -1},  // NE
	{x: 1, y: -1, z: 0},  // E
	{x: 0, y: -1, z: 1},  // SE
	{x: -1, y: 0, z: 1},  // SW
	{x: -1, y: 1, z: 0},  // W
	{x: 0, y: 1, z: -1},  // NW
}

// diagonalDirs holds the six vectors toward a cell's corner-adjacent
// diagonals, beginning with the Southeastern corner and proceeding clockwise.
var diagonalDirs = [6]Cube{
	{x: 1, y: -2, z: 1},  // SE
	{x: -1, y: -1, z: 2}, // S
	{x: -2, y: 1, z: 1},  // SW
	{x: -1, y: 2, z: -1}, // NW
	{x: 1, y: 1, z: -2},  // N
	{x: 2, y: -1, z: -1}, // NE
}

// AxisPair selects which two cube axes a parallelogram spans.
// The third axis is derived from the zero-sum invariant.
type AxisPair int

const (
	// AxesQR spans the q (x) and r (z) axes.
	AxesQR AxisPair = iota
	// AxesSQ spans the s (y) and q (x) axes.
	AxesSQ
	// AxesRS spans the r (z) and s (y) axes.
	AxesRS
)
