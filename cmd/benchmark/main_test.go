package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/grid/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maze = `0,0,0,0
0,1,1,0
0,0,0,1
1,1,0,0
`

func TestReadTargets(t *testing.T) {
	g, err := grid.NewGridFromString(maze)
	require.NoError(t, err)

	input := "# origin destination length\n0 0 3 3 6\n\n1 0 0 3 4\n"
	targets, err := readTargets(strings.NewReader(input), g)
	require.NoError(t, err)
	assert.Equal(t, []target{{0, 0, 3, 3, 6}, {1, 0, 0, 3, 4}}, targets)

	_, err = readTargets(strings.NewReader("0 0 x 3 6\n"), g)
	assert.ErrorContains(t, err, "line 1")
}

func TestReadTargetsRejectsInvalidQueries(t *testing.T) {
	g, err := grid.NewGridFromString(maze)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{"origin outside", "9 9 0 0 3\n", grid.ErrOutOfBounds, "line 1: origin"},
		{"destination outside", "0 0 0 3 3\n0 0 4 0 1\n", grid.ErrOutOfBounds, "line 2: destination"},
		{"blocked destination", "# header\n0 0 1 1 2\n", grid.ErrBlocked, "line 2: destination"},
		{"blocked origin", "3 0 0 0 3\n", grid.ErrBlocked, "line 1: origin"},
		{"same cell", "\n2 2 2 2 0\n", nil, "line 2: origin and destination"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readTargets(strings.NewReader(tt.input), g)
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestRunBenchmarkRejectsInvalidTargets(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(input, []byte(maze), 0644))
	require.NoError(t, os.WriteFile(input+".targets", []byte("0 0 3 3 6\n9 9 0 0 3\n"), 0644))

	var out bytes.Buffer
	err := runBenchmark(&out, &benchmarkOptions{input: input, amountTargets: 10, algorithm: "BFS"})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.ErrorContains(t, err, "line 2")

	err = runBenchmark(&out, &benchmarkOptions{input: input, random: true, amountTargets: -1, algorithm: "BFS"})
	assert.ErrorContains(t, err, "invalid number of targets")
}

func TestCreateTargets(t *testing.T) {
	g, err := grid.NewGridFromString(maze)
	require.NoError(t, err)

	targets := createTargets(g, 25, rand.New(rand.NewSource(5)))
	require.Len(t, targets, 25)
	assert.Equal(t, targets, createTargets(g, 25, rand.New(rand.NewSource(5))))

	bfs := path.NewBreadthFirstSearch(g)
	for _, tt := range targets {
		assert.True(t, g.IsFree(tt.origin()))
		assert.True(t, g.IsFree(tt.destination()))
		assert.NotEqual(t, tt.origin(), tt.destination())
		assert.Equal(t, bfs.ComputeShortestPath(tt.origin(), tt.destination()), tt.length())
	}

	single, err := grid.NewGridFromString("0,1\n")
	require.NoError(t, err)
	assert.Empty(t, createTargets(single, 3, rand.New(rand.NewSource(1))))
}

func TestBenchmark(t *testing.T) {
	g, err := grid.NewGridFromString(maze)
	require.NoError(t, err)
	targets := createTargets(g, 20, rand.New(rand.NewSource(9)))

	for _, algorithm := range []path.Algorithm{path.BFS, path.AStar} {
		b := newBenchmark(path.NewNavigator(algorithm, g), targets)
		b.run(&bytes.Buffer{})
		assert.Equal(t, 20, b.completed)
		assert.Empty(t, b.invalidResults, algorithm.String())
		assert.Empty(t, b.invalidLengths, algorithm.String())
	}

	// a wrong reference length is reported
	wrong := []target{{0, 0, 0, 3, 7}}
	b := newBenchmark(path.NewNavigator(path.BFS, g), wrong)
	b.run(&bytes.Buffer{})
	assert.Equal(t, [][3]int{{0, 3, 7}}, b.invalidLengths)

	var out bytes.Buffer
	b.showResults(&out)
	assert.Contains(t, out.String(), "1/1 invalid path lengths.")
	assert.Contains(t, out.String(), "Case 0 ((0, 0) -> (0, 3)) has invalid length. Has: 3, Reference: 7, Difference: -4")
}

func TestRunBenchmark(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(input, []byte(maze), 0644))

	var out bytes.Buffer
	opts := &benchmarkOptions{input: input, random: true, amountTargets: 10, seed: 3, store: true, algorithm: "DFS"}
	require.NoError(t, runBenchmark(&out, opts))
	assert.Contains(t, out.String(), "Algorithm: DFS")
	assert.Contains(t, out.String(), "0/10 invalid Result")

	out.Reset()
	opts = &benchmarkOptions{input: input, amountTargets: 4, algorithm: "astar"}
	require.NoError(t, runBenchmark(&out, opts))
	assert.Contains(t, out.String(), "0/4 invalid Result")
	assert.Contains(t, out.String(), "0/4 invalid path lengths.")

	assert.Error(t, runBenchmark(&out, &benchmarkOptions{input: input, algorithm: "dijkstra"}))
}
