// Package hexgrid: sentinel errors, construction options, and cost hooks.
package hexgrid

import (
	"errors"

	"github.com/katalvlaran/hexlath/hexcoord"
)

// Sentinel errors for grid operations.
var (
	// ErrCoordNotFound indicates a path endpoint absent from the grid.
	// Plain lookups report absence with a bool instead; only operations that
	// cannot proceed without the cell escalate to this error.
	ErrCoordNotFound = errors.New("hexgrid: coordinate not present in grid")

	// ErrNoPath indicates both endpoints exist but no connected route joins
	// them. Deliberately distinct from ErrCoordNotFound: disconnection is a
	// topology outcome, not a lookup miss.
	ErrNoPath = errors.New("hexgrid: no path between coordinates")

	// ErrLayoutMismatch indicates an Offset or Double value whose parity tag
	// differs from the grid's fixed convention.
	ErrLayoutMismatch = errors.New("hexgrid: coordinate layout does not match grid layout")

	// ErrNegativeCost indicates a cost function returned a negative value;
	// shortest-path search requires non-negative entry costs.
	ErrNegativeCost = errors.New("hexgrid: negative cell cost")
)

// CostFunc reports the cost of stepping into the cell at coord holding
// payload. Costs must be non-negative; the search fails fast with
// ErrNegativeCost otherwise. The function is opaque to the grid — any
// domain meaning (terrain, elevation, danger) lives with the caller.
type CostFunc[T any] func(coord hexcoord.Cube, payload T) int64

// gridConfig carries the construction-time conventions shared by every
// Grid regardless of payload type.
type gridConfig struct {
	offsetLayout hexcoord.OffsetLayout
	doubleLayout hexcoord.DoubleLayout
}

// defaultGridConfig returns the default conventions: odd-row offset parity
// and doubled-width layout.
func defaultGridConfig() gridConfig {
	return gridConfig{
		offsetLayout: hexcoord.OddRow,
		doubleLayout: hexcoord.DoubledWidth,
	}
}

// GridOption configures a Grid before creation.
type GridOption func(*gridConfig)

// WithOffsetLayout fixes the offset parity convention used by the grid's
// offset doorway methods and rectangular builder. Immutable after
// construction; applied uniformly to every conversion.
func WithOffsetLayout(layout hexcoord.OffsetLayout) GridOption {
	return func(c *gridConfig) { c.offsetLayout = layout }
}

// WithDoubleLayout fixes the double-coordinate layout used by the grid's
// double doorway methods. Immutable after construction.
func WithDoubleLayout(layout hexcoord.DoubleLayout) GridOption {
	return func(c *gridConfig) { c.doubleLayout = layout }
}
