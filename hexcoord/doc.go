// Package hexcoord provides exact coordinate algebra for hexagonal grids:
// four interchangeable coordinate systems, lossless conversions between
// them, and deterministic shape generators.
//
// What:
//
//   - Cube: the canonical three-axis system with the invariant x+y+z == 0.
//     All exact arithmetic (distance, rotation, reflection, line drawing)
//     happens here.
//   - Axial: a two-axis projection of Cube (q == x, r == z); the most common
//     user-facing form.
//   - Double: rectangle-friendly coordinates with one doubled axis
//     (DoubledWidth or DoubledHeight); valid cells have col+row even.
//   - Offset: screen-intuitive col/row coordinates; the parity convention
//     (OddRow, EvenRow, OddCol, EvenCol) is carried in the value, never
//     inferred.
//   - FracCube: fractional cube coordinates produced by interpolation,
//     snapped back onto the lattice by Round.
//
// Why:
//
//   - Every conversion is routed through Cube as the hub, so n systems cost
//     n conversions instead of n².
//   - Parity and layout travel with the value, eliminating the classic
//     hex-grid bug of silently assuming the wrong convention.
//   - Shape generators (Ring, Spiral, Rectangle, Parallelogram, Line) are
//     pure functions of their parameters with a fixed, documented order.
//
// Conventions:
//
//   - Neighbor index 0 is the Northeastern side; indices proceed clockwise
//     and wrap around. Diagonal index 0 is the Southeastern corner.
//   - Ring and Spiral enumerate cells starting from the Northeastern corner
//     of each ring and proceed clockwise, innermost ring first.
//
// Complexity:
//
//   - All conversions and arithmetic: O(1).
//   - Ring(c, r): O(r). Spiral(c, r): O(r²). Line(a, b): O(distance).
//
// Errors:
//
//   - ErrCubeSum: cube components do not sum to zero.
//   - ErrDoubleParity: double col/row parity mismatch (no such lattice cell).
//   - ErrNegativeRadius: ring or spiral radius below zero.
//   - ErrEmptyShape: rectangle with non-positive dimensions.
//   - ErrBadBounds: parallelogram with inverted bounds.
package hexcoord
