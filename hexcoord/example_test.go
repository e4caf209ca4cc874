// File: hexcoord/example_test.go
package hexcoord_test

import (
	"fmt"

	"github.com/katalvlaran/hexlath/hexcoord"
)

////////////////////////////////////////////////////////////////////////////////
// Example: conversions through the cube hub
////////////////////////////////////////////////////////////////////////////////

// ExampleOffset_Cube demonstrates how the same col/row pair names different
// cells under different parity conventions, and how each conversion
// round-trips losslessly through the cube hub.
func ExampleOffset_Cube() {
	odd := hexcoord.NewOffset(2, 1, hexcoord.OddRow)
	even := hexcoord.NewOffset(2, 1, hexcoord.EvenRow)

	fmt.Println(odd, "→", odd.Cube())
	fmt.Println(even, "→", even.Cube())
	fmt.Println("round-trip:", odd.Cube().Offset(hexcoord.OddRow) == odd)

	// Output:
	// Offset(2, 1, odd-row) → Cube(2, -3, 1)
	// Offset(2, 1, even-row) → Cube(1, -2, 1)
	// round-trip: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: rings and spirals
////////////////////////////////////////////////////////////////////////////////

// ExampleRing demonstrates the deterministic clockwise enumeration of the
// cells at a fixed distance from a center.
func ExampleRing() {
	ring, _ := hexcoord.Ring(hexcoord.Origin, 1)
	for _, c := range ring {
		fmt.Println(c)
	}

	// Output:
	// Cube(1, 0, -1)
	// Cube(1, -1, 0)
	// Cube(0, -1, 1)
	// Cube(-1, 0, 1)
	// Cube(-1, 1, 0)
	// Cube(0, 1, -1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: line drawing with fractional rounding
////////////////////////////////////////////////////////////////////////////////

// ExampleLine demonstrates drawing a contiguous segment between two cells;
// each intermediate sample is snapped back onto the lattice so the zero-sum
// invariant always holds.
func ExampleLine() {
	a := hexcoord.Origin
	b := hexcoord.MustCube(3, -2, -1)

	for _, c := range hexcoord.Line(a, b) {
		fmt.Println(c, "sum:", c.X()+c.Y()+c.Z())
	}

	// Output:
	// Cube(0, 0, 0) sum: 0
	// Cube(1, -1, 0) sum: 0
	// Cube(2, -1, -1) sum: 0
	// Cube(3, -2, -1) sum: 0
}
