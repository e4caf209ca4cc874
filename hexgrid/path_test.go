package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hexcoord"
	"github.com/katalvlaran/hexlath/hexgrid"
)

// TestPath_Deterministic pins the exact route on an open grid: with the
// canonical NE-first expansion order, ties always break the same way.
func TestPath_Deterministic(t *testing.T) {
	g, err := hexgrid.NewHexagonal(hexcoord.Origin, 2, 0)
	require.NoError(t, err)

	path, err := g.Path(hexcoord.Origin, hexcoord.MustCube(2, -1, -1))
	require.NoError(t, err)
	assert.Equal(t, []hexcoord.Cube{
		hexcoord.Origin,
		hexcoord.MustCube(1, 0, -1),
		hexcoord.MustCube(2, -1, -1),
	}, path)
}

// TestPath_Properties verifies the BFS guarantees on an open grid: length is
// hex distance plus one, endpoints match, every step crosses one edge.
func TestPath_Properties(t *testing.T) {
	g, err := hexgrid.NewHexagonal(hexcoord.Origin, 3, 0)
	require.NoError(t, err)

	targets := []hexcoord.Cube{
		hexcoord.MustCube(3, -3, 0),
		hexcoord.MustCube(-2, 3, -1),
		hexcoord.MustCube(0, -3, 3),
		hexcoord.MustCube(-3, 0, 3),
	}
	for _, b := range targets {
		path, err := g.Path(hexcoord.Origin, b)
		require.NoError(t, err, "target %v", b)
		assert.Len(t, path, hexcoord.Origin.Distance(b)+1, "target %v", b)
		assert.Equal(t, hexcoord.Origin, path[0])
		assert.Equal(t, b, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			assert.True(t, g.HasEdge(path[i-1], path[i]), "step %d for %v", i, b)
		}
	}
}

// TestPath_AroundHole verifies the route bends around a removed cell instead
// of stepping through it.
func TestPath_AroundHole(t *testing.T) {
	g, err := hexgrid.NewHexagonal(hexcoord.Origin, 1, 0)
	require.NoError(t, err)
	require.True(t, g.Remove(hexcoord.Origin))

	a := hexcoord.MustCube(1, 0, -1)
	b := hexcoord.MustCube(-1, 0, 1)

	path, err := g.Path(a, b)
	require.NoError(t, err)
	assert.Equal(t, []hexcoord.Cube{
		a,
		hexcoord.MustCube(1, -1, 0),
		hexcoord.MustCube(0, -1, 1),
		b,
	}, path)
	assert.NotContains(t, path, hexcoord.Origin)
}

// TestPath_SameCell documents the zero-length path.
func TestPath_SameCell(t *testing.T) {
	g := hexgrid.New[int]()
	c := hexcoord.MustCube(1, -1, 0)
	g.Insert(c, 0)

	path, err := g.Path(c, c)
	require.NoError(t, err)
	assert.Equal(t, []hexcoord.Cube{c}, path)
}

// TestPath_Errors covers absent endpoints and disconnected components.
func TestPath_Errors(t *testing.T) {
	g := hexgrid.New[int]()
	a := hexcoord.Origin
	island := hexcoord.MustCube(4, -4, 0)
	g.Insert(a, 0)
	g.Insert(island, 0)

	_, err := g.Path(a, hexcoord.MustCube(9, 0, -9))
	assert.ErrorIs(t, err, hexgrid.ErrCoordNotFound)

	_, err = g.Path(hexcoord.MustCube(9, 0, -9), a)
	assert.ErrorIs(t, err, hexgrid.ErrCoordNotFound)

	_, err = g.Path(a, island)
	assert.ErrorIs(t, err, hexgrid.ErrNoPath)
}

// TestPathWithCost_Detour verifies that a cheap long route beats an
// expensive short one.
func TestPathWithCost_Detour(t *testing.T) {
	g, err := hexgrid.NewHexagonal(hexcoord.Origin, 1, 1)
	require.NoError(t, err)
	g.Insert(hexcoord.Origin, 10) // expensive center

	a := hexcoord.MustCube(-1, 0, 1)
	b := hexcoord.MustCube(1, -1, 0)
	costOf := func(_ hexcoord.Cube, weight int) int64 { return int64(weight) }

	path, total, err := g.PathWithCost(a, b, costOf)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "two unit steps beat one step through the center")
	assert.Equal(t, []hexcoord.Cube{
		a,
		hexcoord.MustCube(0, -1, 1),
		b,
	}, path)
}

// TestPathWithCost_UniformMatchesBFS verifies that unit costs reproduce BFS
// route length, with total equal to edge count.
func TestPathWithCost_UniformMatchesBFS(t *testing.T) {
	g, err := hexgrid.NewHexagonal(hexcoord.Origin, 3, 0)
	require.NoError(t, err)

	a := hexcoord.MustCube(-3, 3, 0)
	b := hexcoord.MustCube(3, -1, -2)
	unit := func(hexcoord.Cube, int) int64 { return 1 }

	weighted, total, err := g.PathWithCost(a, b, unit)
	require.NoError(t, err)
	unweighted, err := g.Path(a, b)
	require.NoError(t, err)

	assert.Len(t, weighted, len(unweighted))
	assert.Equal(t, int64(len(weighted)-1), total)
}

// TestPathWithCost_Errors covers the same endpoint guards as Path plus the
// negative-cost fail-fast.
func TestPathWithCost_Errors(t *testing.T) {
	g, err := hexgrid.NewHexagonal(hexcoord.Origin, 1, 0)
	require.NoError(t, err)
	unit := func(hexcoord.Cube, int) int64 { return 1 }

	_, _, err = g.PathWithCost(hexcoord.MustCube(5, -5, 0), hexcoord.Origin, unit)
	assert.ErrorIs(t, err, hexgrid.ErrCoordNotFound)

	_, _, err = g.PathWithCost(hexcoord.Origin, hexcoord.MustCube(5, -5, 0), unit)
	assert.ErrorIs(t, err, hexgrid.ErrCoordNotFound)

	negative := func(hexcoord.Cube, int) int64 { return -1 }
	_, _, err = g.PathWithCost(hexcoord.Origin, hexcoord.MustCube(1, 0, -1), negative)
	assert.ErrorIs(t, err, hexgrid.ErrNegativeCost)

	// Zero-length route never consults the cost function.
	path, total, err := g.PathWithCost(hexcoord.Origin, hexcoord.Origin, negative)
	require.NoError(t, err)
	assert.Equal(t, []hexcoord.Cube{hexcoord.Origin}, path)
	assert.Zero(t, total)

	island := hexcoord.MustCube(6, -6, 0)
	g.Insert(island, 0)
	_, _, err = g.PathWithCost(hexcoord.Origin, island, unit)
	assert.ErrorIs(t, err, hexgrid.ErrNoPath)
}
