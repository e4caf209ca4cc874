// SPDX-License-Identifier: MIT
//
// Package hexgrid: Grid method implementations.
//
// Grid stores cell payloads keyed by cube coordinate and maintains an
// explicit adjacency structure beside them: adj[a][b] exists exactly when
// both cells are present and their hex distance is 1. Keeping the edges
// materialized (rather than recomputing neighbors arithmetically per query)
// is what lets sparse, irregular maps behave uniformly with rectangular
// ones.
package hexgrid

import (
	"sort"

	"github.com/katalvlaran/hexlath/hexcoord"
)

// Grid is a mutable hexagonal map from cube coordinates to payloads of
// type T, backed by an undirected adjacency graph over the present cells.
//
// The zero value is not usable; construct with New or one of the builders.
// Grid performs no internal locking — see the package documentation for
// the concurrency contract.
type Grid[T any] struct {
	cfg   gridConfig
	cells map[hexcoord.Cube]*T
	adj   map[hexcoord.Cube]map[hexcoord.Cube]struct{}
}

// New creates an empty Grid with the given options.
// Complexity: O(len(opts)).
func New[T any](opts ...GridOption) *Grid[T] {
	cfg := defaultGridConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid[T]{
		cfg:   cfg,
		cells: make(map[hexcoord.Cube]*T),
		adj:   make(map[hexcoord.Cube]map[hexcoord.Cube]struct{}),
	}
}

// OffsetLayout reports the grid's fixed offset parity convention.
func (g *Grid[T]) OffsetLayout() hexcoord.OffsetLayout { return g.cfg.offsetLayout }

// DoubleLayout reports the grid's fixed double-coordinate layout.
func (g *Grid[T]) DoubleLayout() hexcoord.DoubleLayout { return g.cfg.doubleLayout }

// Len returns the number of cells currently present.
// Complexity: O(1).
func (g *Grid[T]) Len() int { return len(g.cells) }

// Contains reports whether a cell exists at coord.
// Complexity: O(1).
func (g *Grid[T]) Contains(coord hexcoord.Cube) bool {
	_, ok := g.cells[coord]

	return ok
}

// Insert adds or replaces the cell at coord. Overwriting an existing cell
// replaces only the payload; its adjacency edges are already consistent and
// are kept. Inserting a new cell links it to each of its six lattice
// neighbors that is already present, in both directions.
// Complexity: O(1) amortized — at most six edge insertions.
func (g *Grid[T]) Insert(coord hexcoord.Cube, payload T) {
	if cell, ok := g.cells[coord]; ok {
		*cell = payload

		return
	}

	g.cells[coord] = &payload
	g.adj[coord] = make(map[hexcoord.Cube]struct{}, 6)
	for _, nb := range coord.Neighbors() {
		if _, ok := g.cells[nb]; !ok {
			continue
		}
		g.adj[coord][nb] = struct{}{}
		g.adj[nb][coord] = struct{}{}
	}
}

// Remove deletes the cell at coord together with all incident edges, so no
// remaining cell keeps a dangling neighbor link. Removing an absent
// coordinate is a deliberate no-op; the return value reports whether a cell
// was actually removed, letting callers treat absence as an error if their
// domain demands it.
// Complexity: O(1) — at most six edge deletions.
func (g *Grid[T]) Remove(coord hexcoord.Cube) bool {
	if _, ok := g.cells[coord]; !ok {
		return false
	}

	for nb := range g.adj[coord] {
		delete(g.adj[nb], coord)
	}
	delete(g.adj, coord)
	delete(g.cells, coord)

	return true
}

// Get returns a copy of the payload at coord. The second result reports
// presence; a miss is an expected outcome, never a failure.
// Complexity: O(1).
func (g *Grid[T]) Get(coord hexcoord.Cube) (T, bool) {
	if cell, ok := g.cells[coord]; ok {
		return *cell, true
	}

	var zero T

	return zero, false
}

// At returns a pointer to the payload at coord for in-place mutation, or
// nil presence when absent. The pointer stays valid until the cell is
// removed.
// Complexity: O(1).
func (g *Grid[T]) At(coord hexcoord.Cube) (*T, bool) {
	cell, ok := g.cells[coord]

	return cell, ok
}

// Neighbors returns the subset of coord's six lattice neighbors that are
// present in the grid, in the canonical NE-first clockwise order. An absent
// coord yields an empty result.
// Complexity: O(1) — six checks.
func (g *Grid[T]) Neighbors(coord hexcoord.Cube) []hexcoord.Cube {
	edges, ok := g.adj[coord]
	if !ok {
		return nil
	}

	out := make([]hexcoord.Cube, 0, len(edges))
	for _, nb := range coord.Neighbors() {
		if _, present := edges[nb]; present {
			out = append(out, nb)
		}
	}

	return out
}

// HasEdge reports whether an adjacency edge joins a and b: both present and
// at hex distance exactly 1.
// Complexity: O(1).
func (g *Grid[T]) HasEdge(a, b hexcoord.Cube) bool {
	_, ok := g.adj[a][b]

	return ok
}

// Coords returns every present coordinate in a deterministic order, sorted
// by z (row), then x (column). Mutating the grid does not affect a
// previously returned slice.
// Complexity: O(V log V).
func (g *Grid[T]) Coords() []hexcoord.Cube {
	out := make([]hexcoord.Cube, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z() != out[j].Z() {
			return out[i].Z() < out[j].Z()
		}

		return out[i].X() < out[j].X()
	})

	return out
}

// Distance returns the exact hex distance between two coordinates. It is a
// property of the lattice, not of the map: neither coordinate needs to be
// present in the grid.
// Complexity: O(1).
func (g *Grid[T]) Distance(a, b hexcoord.Cube) int {
	return a.Distance(b)
}

// ResolveOffset converts an offset coordinate to cube form under the grid's
// fixed parity convention. A value tagged with a different layout is
// rejected with ErrLayoutMismatch: mixing parity conventions inside one
// grid is the primary correctness hazard of offset coordinates.
func (g *Grid[T]) ResolveOffset(o hexcoord.Offset) (hexcoord.Cube, error) {
	if o.Layout != g.cfg.offsetLayout {
		return hexcoord.Cube{}, ErrLayoutMismatch
	}

	return o.Cube(), nil
}

// ResolveDouble converts a double coordinate to cube form under the grid's
// fixed layout, rejecting a mismatched tag with ErrLayoutMismatch.
func (g *Grid[T]) ResolveDouble(d hexcoord.Double) (hexcoord.Cube, error) {
	if d.Layout != g.cfg.doubleLayout {
		return hexcoord.Cube{}, ErrLayoutMismatch
	}

	return d.Cube(), nil
}

// InsertOffset inserts via an offset coordinate, enforcing the grid's
// parity convention.
func (g *Grid[T]) InsertOffset(o hexcoord.Offset, payload T) error {
	c, err := g.ResolveOffset(o)
	if err != nil {
		return err
	}
	g.Insert(c, payload)

	return nil
}

// ContainsOffset reports presence via an offset coordinate, enforcing the
// grid's parity convention.
func (g *Grid[T]) ContainsOffset(o hexcoord.Offset) (bool, error) {
	c, err := g.ResolveOffset(o)
	if err != nil {
		return false, err
	}

	return g.Contains(c), nil
}

// GetOffset looks up via an offset coordinate, enforcing the grid's parity
// convention. Presence is reported by the bool; the error fires only on a
// layout mismatch.
func (g *Grid[T]) GetOffset(o hexcoord.Offset) (T, bool, error) {
	c, err := g.ResolveOffset(o)
	if err != nil {
		var zero T

		return zero, false, err
	}
	v, ok := g.Get(c)

	return v, ok, nil
}
