// SPDX-License-Identifier: MIT

package hexcoord

import "fmt"

// Cube is the canonical three-axis hexagonal coordinate.
//
// Cube treats hexes as cross-sections of a cube sliced along its diagonal,
// which pins every cell to the plane x+y+z == 0. The fields are unexported
// so that a violating value can never be constructed; use NewCube, MustCube,
// or a conversion from another coordinate system.
//
// Cube is an immutable value type: equality, comparison, and map-key use are
// structural, and every method returns a fresh value.
type Cube struct {
	x, y, z int
}

// Origin is the cube coordinate (0, 0, 0).
var Origin = Cube{}

// NewCube builds a Cube from three components, returning ErrCubeSum when
// they do not sum to zero. A violated sum is always a caller bug, never a
// runtime condition, so it is reported eagerly rather than repaired.
// Complexity: O(1).
func NewCube(x, y, z int) (Cube, error) {
	if x+y+z != 0 {
		return Cube{}, fmt.Errorf("%w: (%d, %d, %d)", ErrCubeSum, x, y, z)
	}

	return Cube{x: x, y: y, z: z}, nil
}

// MustCube builds a Cube from three components and panics on a violated
// zero-sum invariant. Intended for literals in tests and tables where the
// components are known constants.
func MustCube(x, y, z int) Cube {
	c, err := NewCube(x, y, z)
	if err != nil {
		panic(err)
	}

	return c
}

// X returns the first cube component.
func (c Cube) X() int { return c.x }

// Y returns the second cube component.
func (c Cube) Y() int { return c.y }

// Z returns the third cube component.
func (c Cube) Z() int { return c.z }

// String renders the coordinate as "Cube(x, y, z)".
func (c Cube) String() string {
	return fmt.Sprintf("Cube(%d, %d, %d)", c.x, c.y, c.z)
}

// Add returns the component-wise vector sum c + o.
// The zero-sum invariant is closed under addition.
func (c Cube) Add(o Cube) Cube {
	return Cube{x: c.x + o.x, y: c.y + o.y, z: c.z + o.z}
}

// Sub returns the component-wise vector difference c - o.
func (c Cube) Sub(o Cube) Cube {
	return Cube{x: c.x - o.x, y: c.y - o.y, z: c.z - o.z}
}

// Scale returns the coordinate scaled by the integer factor k.
func (c Cube) Scale(k int) Cube {
	return Cube{x: c.x * k, y: c.y * k, z: c.z * k}
}

// Neg returns the coordinate reflected through the origin (scale by -1).
func (c Cube) Neg() Cube {
	return Cube{x: -c.x, y: -c.y, z: -c.z}
}

// Neighbor returns the edge-adjacent coordinate at the given direction
// index. Index 0 is the Northeastern side; indices increase clockwise and
// wrap modulo 6 (negative indices wrap as well).
// Complexity: O(1).
func (c Cube) Neighbor(i int) Cube {
	return c.Add(neighborDirs[((i%6)+6)%6])
}

// Neighbors returns all six edge-adjacent coordinates, Northeastern side
// first and proceeding clockwise.
// Complexity: O(1) — always exactly six results.
func (c Cube) Neighbors() []Cube {
	out := make([]Cube, 6)
	for i := range neighborDirs {
		out[i] = c.Add(neighborDirs[i])
	}

	return out
}

// Diagonal returns the corner-adjacent coordinate at the given index.
// Index 0 is the Southeastern corner; indices increase clockwise and wrap
// modulo 6.
func (c Cube) Diagonal(i int) Cube {
	return c.Add(diagonalDirs[((i%6)+6)%6])
}

// Diagonals returns all six corner-adjacent coordinates, Southeastern
// corner first and proceeding clockwise.
func (c Cube) Diagonals() []Cube {
	out := make([]Cube, 6)
	for i := range diagonalDirs {
		out[i] = c.Add(diagonalDirs[i])
	}

	return out
}

// Distance returns the exact hex distance between c and o: the minimum
// number of unit steps between the two cells. Computed as the maximum
// absolute component of the difference vector, which on the x+y+z == 0
// plane equals (|dx|+|dy|+|dz|)/2. Integer arithmetic only.
// Complexity: O(1).
func (c Cube) Distance(o Cube) int {
	dx := abs(c.x - o.x)
	dy := abs(c.y - o.y)
	dz := abs(c.z - o.z)

	return max(dx, dy, dz)
}

// RotateClockwise rotates c by turns × 60° clockwise about center.
// Each turn permutes and negates the difference vector: (x,y,z) → (-z,-x,-y).
// Turns wrap modulo 6; negative turns rotate counter-clockwise.
// Complexity: O(1) — at most five permutation steps.
func (c Cube) RotateClockwise(center Cube, turns int) Cube {
	v := c.Sub(center)
	for t := ((turns % 6) + 6) % 6; t > 0; t-- {
		v = Cube{x: -v.z, y: -v.x, z: -v.y}
	}

	return v.Add(center)
}

// RotateCounterClockwise rotates c by turns × 60° counter-clockwise about
// center. Each turn maps the difference vector (x,y,z) → (-y,-z,-x).
// Turns wrap modulo 6; negative turns rotate clockwise.
func (c Cube) RotateCounterClockwise(center Cube, turns int) Cube {
	v := c.Sub(center)
	for t := ((turns % 6) + 6) % 6; t > 0; t-- {
		v = Cube{x: -v.y, y: -v.z, z: -v.x}
	}

	return v.Add(center)
}

// ReflectX mirrors c across the x-axis through center, swapping the y and z
// components of the difference vector. ReflectX is its own inverse.
func (c Cube) ReflectX(center Cube) Cube {
	v := c.Sub(center)

	return Cube{x: v.x, y: v.z, z: v.y}.Add(center)
}

// ReflectY mirrors c across the y-axis through center, swapping the x and z
// components of the difference vector. ReflectY is its own inverse.
func (c Cube) ReflectY(center Cube) Cube {
	v := c.Sub(center)

	return Cube{x: v.z, y: v.y, z: v.x}.Add(center)
}

// ReflectZ mirrors c across the z-axis through center, swapping the x and y
// components of the difference vector. ReflectZ is its own inverse.
func (c Cube) ReflectZ(center Cube) Cube {
	v := c.Sub(center)

	return Cube{x: v.y, y: v.x, z: v.z}.Add(center)
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
