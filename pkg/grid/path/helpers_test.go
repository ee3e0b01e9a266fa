package path

import (
	"math/rand"
	"testing"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.NewGridFromString(s)
	require.NoError(t, err)
	return g
}

func positions(coordinates ...[2]int) []grid.Position {
	result := make([]grid.Position, 0, len(coordinates))
	for _, c := range coordinates {
		result = append(result, grid.MakePosition(c[0], c[1]))
	}
	return result
}

// randomGrid creates a rows x cols grid where each cell is blocked with the given probability.
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	cells := make([][]grid.Cell, rows)
	for r := range cells {
		cells[r] = make([]grid.Cell, cols)
		for c := range cells[r] {
			if rng.Float64() < density {
				cells[r][c] = grid.Blocked
			}
		}
	}
	g, err := grid.NewGrid(cells)
	require.NoError(t, err)
	return g
}

func randomFreePosition(rng *rand.Rand, g *grid.Grid) (grid.Position, bool) {
	free := make([]grid.Position, 0)
	for i := 0; i < g.CellCount(); i++ {
		if p := g.PositionAt(i); g.IsFree(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return grid.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}

// requireWellFormed checks that path leads from origin to destination by single cardinal
// moves over free cells without visiting a cell twice.
func requireWellFormed(t *testing.T, g *grid.Grid, path []grid.Position, origin, destination grid.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, origin, path[0])
	require.Equal(t, destination, path[len(path)-1])

	seen := make(map[grid.Position]bool, len(path))
	for i, p := range path {
		require.True(t, g.IsFree(p), "path leaves the free cells at %v", p)
		require.False(t, seen[p], "path visits %v twice", p)
		seen[p] = true
		if i > 0 {
			require.True(t, path[i-1].IsAdjacent(p), "no cardinal move from %v to %v", path[i-1], p)
		}
	}
}
