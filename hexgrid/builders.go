// Package hexgrid: builders that pre-populate grids from shape generators.
package hexgrid

import (
	"github.com/katalvlaran/hexlath/hexcoord"
)

// FromShape creates a grid containing every coordinate in coords, each
// holding a copy of fill. Duplicate coordinates collapse to one cell.
// Adjacency edges are established as cells are inserted.
// Complexity: O(len(coords)).
func FromShape[T any](coords []hexcoord.Cube, fill T, opts ...GridOption) *Grid[T] {
	g := New[T](opts...)
	for _, c := range coords {
		g.Insert(c, fill)
	}

	return g
}

// NewHexagonal creates a grid covering the filled hexagonal region of the
// given radius around center — 3r²+3r+1 cells, each holding a copy of fill.
// Returns hexcoord.ErrNegativeRadius for radius < 0.
// Complexity: O(radius²).
func NewHexagonal[T any](center hexcoord.Cube, radius int, fill T, opts ...GridOption) (*Grid[T], error) {
	coords, err := hexcoord.Spiral(center, radius)
	if err != nil {
		return nil, err
	}

	return FromShape(coords, fill, opts...), nil
}

// NewRectangular creates a grid covering a cols × rows rectangle under the
// grid's offset parity convention (configure it with WithOffsetLayout).
// Returns hexcoord.ErrEmptyShape for non-positive dimensions.
// Complexity: O(cols × rows).
func NewRectangular[T any](cols, rows int, fill T, opts ...GridOption) (*Grid[T], error) {
	g := New[T](opts...)
	coords, err := hexcoord.Rectangle(cols, rows, g.cfg.offsetLayout)
	if err != nil {
		return nil, err
	}
	for _, c := range coords {
		g.Insert(c, fill)
	}

	return g, nil
}
