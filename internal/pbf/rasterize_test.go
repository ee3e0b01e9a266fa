package pbf

import (
	"testing"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	_, err := Bounds(nil)
	assert.ErrorIs(t, err, ErrNoObstacles)

	bound, err := Bounds([]Obstacle{
		{Line: orb.LineString{{1, 2}, {3, 2}}},
		{Line: orb.LineString{{0, 5}}},
	})
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 2}, Max: orb.Point{3, 5}}, bound)
}

func TestRasterize(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 4}}
	obstacles := []Obstacle{
		// wall from west to east at latitude 2
		{ID: 1, Kind: "barrier", Line: orb.LineString{{0, 2}, {4, 2}}},
		// single node in the north west corner
		{ID: 2, Kind: "building", Line: orb.LineString{{0.5, 3.5}}},
		// outside of the bound
		{ID: 3, Kind: "building", Line: orb.LineString{{9, 9}}},
	}

	g, err := Rasterize(obstacles, bound, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "1,0,0,0\n0,0,0,0\n1,1,1,1\n0,0,0,0\n", g.AsString())
}

func TestRasterizeDiagonal(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{3, 3}}
	obstacles := []Obstacle{{Line: orb.LineString{{0.5, 2.5}, {2.5, 0.5}}}}

	g, err := Rasterize(obstacles, bound, 3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, grid.Blocked, g.Cell(grid.MakePosition(i, i)))
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	_, err := Rasterize(nil, orb.Bound{}, 0, 3)
	assert.Error(t, err)
}

func TestRasterizeDegenerateBound(t *testing.T) {
	obstacles := []Obstacle{{Line: orb.LineString{{1, 1}}}}
	bound, err := Bounds(obstacles)
	require.NoError(t, err)

	g, err := Rasterize(obstacles, bound, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "1,0\n0,0\n", g.AsString())
}
