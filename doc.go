// Package hexlath is your in-memory toolkit for hexagonal grids — from
// exact coordinate algebra to sparse graph-backed maps with pathfinding.
//
// 🚀 What is hexlath?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Coordinate systems: Cube, Axial, Double (two layouts), Offset (four parities)
//		• Lossless conversions: every system round-trips through the Cube hub
//		• Exact arithmetic: add, subtract, scale, distance, rotate, reflect
//		• Fractional rounding: snap interpolated points back onto the lattice
//		• Shape generators: rings, spirals, rectangles, parallelograms, lines
//		• HexGrid: a generic container over an explicit adjacency graph,
//		  supporting irregular maps, holes, BFS and weighted shortest paths
//
// ✨ Why choose hexlath?
//
//   - Convention-explicit – parity and layout are carried in values, never guessed
//   - Rock-solid invariants – a Cube with x+y+z≠0 cannot be constructed
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – every generator and traversal has a fixed, documented order
//
// Under the hood, everything is organized under two subpackages:
//
//	hexcoord/ — coordinate value types, conversions, arithmetic & shape generators
//	hexgrid/  — the generic grid container, builders, neighbors & pathfinding
//
// Quick ASCII example:
//
//	     __
//	  __/NE\__
//	 /NW\__/E \
//	 \__/C \__/
//	 /W \__/SE\
//	 \__/SW\__/
//	    \__/
//
//	the six neighbors of a cell C, enumerated NE-first and clockwise.
//
// Dive into examples/ for runnable scenarios, and the package docs for the
// full conversion and convention reference.
//
//	go get github.com/katalvlaran/hexlath
package hexlath
