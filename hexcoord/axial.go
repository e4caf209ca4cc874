package hexcoord

import "fmt"

// Axial is the two-axis projection of a cube coordinate.
//
// Axial stores only q and r; the third cube component is always recoverable
// from the zero-sum invariant (q == x, r == z, y == -q-r), so the
// conversion to and from Cube is total and lossless. Axial has no invariant
// of its own: every (q, r) pair names a valid cell.
type Axial struct {
	Q, R int
}

// AxialOrigin is the axial coordinate (0, 0).
var AxialOrigin = Axial{}

// Cube converts the axial coordinate to the canonical cube form.
// Complexity: O(1).
func (a Axial) Cube() Cube {
	return Cube{x: a.Q, y: -a.Q - a.R, z: a.R}
}

// Axial converts the cube coordinate to its axial projection.
// Complexity: O(1).
func (c Cube) Axial() Axial {
	return Axial{Q: c.x, R: c.z}
}

// String renders the coordinate as "Axial(q, r)".
func (a Axial) String() string {
	return fmt.Sprintf("Axial(%d, %d)", a.Q, a.R)
}

// Add returns the component-wise vector sum a + o.
func (a Axial) Add(o Axial) Axial {
	return Axial{Q: a.Q + o.Q, R: a.R + o.R}
}

// Sub returns the component-wise vector difference a - o.
func (a Axial) Sub(o Axial) Axial {
	return Axial{Q: a.Q - o.Q, R: a.R - o.R}
}

// Scale returns the coordinate scaled by the integer factor k.
func (a Axial) Scale(k int) Axial {
	return Axial{Q: a.Q * k, R: a.R * k}
}

// Neighbor returns the edge-adjacent axial coordinate at the given
// direction index, following the NE-first clockwise convention.
func (a Axial) Neighbor(i int) Axial {
	return a.Cube().Neighbor(i).Axial()
}

// Neighbors returns all six edge-adjacent axial coordinates, NE first,
// proceeding clockwise.
func (a Axial) Neighbors() []Axial {
	cubes := a.Cube().Neighbors()
	out := make([]Axial, len(cubes))
	for i, c := range cubes {
		out[i] = c.Axial()
	}

	return out
}

// Distance returns the exact hex distance between a and o, routed through
// the cube hub.
func (a Axial) Distance(o Axial) int {
	return a.Cube().Distance(o.Cube())
}
