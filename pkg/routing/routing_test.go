package routing

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/grid/path"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrid = `0,0,0
0,1,1
0,0,0
`

func newTestRouter(t *testing.T, opts ...Option) *Router {
	t.Helper()
	g, err := grid.NewGridFromString(testGrid)
	require.NoError(t, err)
	return NewRouter(g, opts...)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
	}{
		{"BFS", ModeBFS},
		{"dfs", ModeDFS},
		{"A*", ModeAStar},
		{"astar", ModeAStar},
		{"all", ModeAll},
	}
	for _, tt := range tests {
		mode, err := ParseMode(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.mode, mode)
	}

	_, err := ParseMode("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownMode)

	assert.Equal(t, path.Algorithms, ModeAll.Algorithms())
	assert.Equal(t, []path.Algorithm{path.AStar}, ModeAStar.Algorithms())
	assert.Empty(t, Mode("nope").Algorithms())
}

func TestSetMode(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, ModeAStar, r.Mode())

	assert.True(t, r.SetMode("bfs"))
	assert.Equal(t, ModeBFS, r.Mode())

	assert.False(t, r.SetMode("contraction-hierarchies"))
	assert.Equal(t, ModeBFS, r.Mode())
}

func TestValidate(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name        string
		origin      grid.Position
		destination grid.Position
		err         error
	}{
		{"valid", grid.MakePosition(0, 0), grid.MakePosition(2, 2), nil},
		{"same cell", grid.MakePosition(0, 0), grid.MakePosition(0, 0), ErrSameOriginDestination},
		{"origin outside", grid.MakePosition(3, 0), grid.MakePosition(0, 0), grid.ErrOutOfBounds},
		{"destination outside", grid.MakePosition(0, 0), grid.MakePosition(0, -1), grid.ErrOutOfBounds},
		{"destination blocked", grid.MakePosition(0, 0), grid.MakePosition(1, 1), grid.ErrBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Validate(tt.origin, tt.destination)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSameCellRejectedBeforeSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newTestRouter(t, WithMetrics(NewMetrics(reg)))
	r.SetMode("ALL")

	routes, err := r.ComputeRoutes(grid.MakePosition(2, 2), grid.MakePosition(2, 2))
	assert.ErrorIs(t, err, ErrSameOriginDestination)
	assert.Nil(t, routes)

	count, err := testutil.GatherAndCount(reg, "gridpath_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestComputeRoutesAll(t *testing.T) {
	r := newTestRouter(t)
	require.True(t, r.SetMode("ALL"))

	origin, destination := grid.MakePosition(0, 0), grid.MakePosition(2, 0)
	routes, err := r.ComputeRoutes(origin, destination)
	require.NoError(t, err)
	require.Len(t, routes, 3)

	expected := []grid.Position{grid.MakePosition(0, 0), grid.MakePosition(1, 0), grid.MakePosition(2, 0)}
	expansions := []int{4, 5, 2}
	for i, route := range routes {
		assert.Equal(t, path.Algorithms[i], route.Algorithm)
		assert.True(t, route.Exists)
		assert.Equal(t, origin, route.Origin)
		assert.Equal(t, destination, route.Destination)
		assert.Equal(t, expected, route.Waypoints)
		assert.Equal(t, 2, route.Length)
		assert.Equal(t, expansions[i], route.Expansions)
		assert.NotEmpty(t, route.SearchSpace)
	}
}

func TestComputeRouteNotFound(t *testing.T) {
	g, err := grid.NewGridFromString("0,1,0\n")
	require.NoError(t, err)
	r := NewRouter(g)

	route, err := r.ComputeRoute(grid.MakePosition(0, 0), grid.MakePosition(0, 2), path.BFS)
	require.NoError(t, err)
	assert.False(t, route.Exists)
	assert.Empty(t, route.Waypoints)
	assert.Equal(t, 0, route.Length)
	assert.Equal(t, 1, route.Expansions)
}

func TestComputeRoutesWithUnknownMode(t *testing.T) {
	r := newTestRouter(t)
	_, err := r.ComputeRoutesWithMode(grid.MakePosition(0, 0), grid.MakePosition(2, 2), Mode("IDA*"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestMetricsAndLogging(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newTestRouter(t, WithMetrics(NewMetrics(reg)), WithLogger(logger))

	_, err := r.ComputeRoutesWithMode(grid.MakePosition(0, 0), grid.MakePosition(2, 2), ModeAll)
	require.NoError(t, err)
	_, err = r.ComputeRoute(grid.MakePosition(0, 0), grid.MakePosition(2, 2), path.BFS)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "gridpath_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count) // one series per algorithm, all found

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "gridpath_searches_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "algorithm" && label.GetValue() == "BFS" {
					assert.Equal(t, 2.0, metric.GetCounter().GetValue())
				}
			}
		}
	}

	assert.Contains(t, buf.String(), "search finished")
	assert.Contains(t, buf.String(), "algorithm=A*")

	_, err = r.ComputeRoutes(grid.MakePosition(0, 0), grid.MakePosition(1, 1))
	assert.ErrorIs(t, err, grid.ErrBlocked)
	assert.Contains(t, buf.String(), "rejected query")
}
