// Package hexgrid provides a generic, graph-backed container for hexagonal
// maps: cells keyed by cube coordinate, explicit adjacency edges, shape
// builders, and shortest-path search.
//
// What:
//
//   - Grid[T] maps cube coordinates to caller-supplied payloads and keeps an
//     explicit adjacency structure: an edge exists between two cells exactly
//     when both are present and their hex distance is 1.
//   - Builders pre-populate grids from the hexcoord shape generators
//     (hexagonal regions, rectangles, arbitrary coordinate sets).
//   - Path runs breadth-first search over the induced adjacency graph;
//     PathWithCost runs Dijkstra with caller-supplied per-cell entry costs.
//
// Why:
//
//   - Sparse and irregular maps — holes, bridges, non-rectangular borders —
//     behave exactly like rectangular ones, because adjacency is recorded as
//     a graph instead of being recomputed from array bounds.
//   - Obstacles need no flag: a cell absent from the grid is simply not part
//     of the topology.
//
// Conventions:
//
//   - Neighbors enumerates the present subset of the six lattice neighbors,
//     Northeastern side first, proceeding clockwise.
//   - The grid's offset parity and double layout are fixed by options at
//     construction and applied uniformly; a value carrying a different tag
//     is rejected with ErrLayoutMismatch.
//   - Remove of an absent coordinate is a no-op and reports false; absence
//     on lookups is an expected result, never a failure.
//
// Concurrency:
//
//   - Coordinate values are immutable and freely shareable. Grid is a plain
//     mutable structure with no internal locking: concurrent mutation, or
//     mutation concurrent with reads, must be serialized by the caller.
//
// Complexity:
//
//   - Insert/Remove/Get/Contains: O(1) amortized (Insert touches ≤ 6 edges).
//   - Neighbors: O(1) — at most six lookups.
//   - Path: O(V+E) BFS. PathWithCost: O((V+E) log V) Dijkstra.
//
// Errors:
//
//   - ErrCoordNotFound: a path endpoint is not present in the grid.
//   - ErrNoPath: the endpoints are present but not connected.
//   - ErrLayoutMismatch: an Offset or Double value carries a parity tag
//     different from the grid's convention.
//   - ErrNegativeCost: a cost function returned a negative entry cost.
package hexgrid
