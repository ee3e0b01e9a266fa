package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/natevvv/grid-path-search/internal/pbf"
	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "grid-builder",
		Short: "Create grid files for pathsearch",
	}
	root.AddCommand(newRandomCmd(), newOsmCmd(), newMergeCmd())
	return root
}

func newRandomCmd() *cobra.Command {
	var rows, cols int
	var density float64
	var seed int64
	var output string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Create a grid with randomly placed obstacles",
		Long: `Create a grid with randomly placed obstacles.

Every cell is blocked with probability --density. The cell (0, 0) is always free.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			g, err := randomGrid(rows, cols, density, seed)
			if err != nil {
				return err
			}
			if err := grid.WriteGrid(g, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d grid with %d obstacles (seed %d) to %s\n", g.Rows(), g.Cols(), len(g.BlockedCells()), seed, output)
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 20, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 20, "number of columns")
	cmd.Flags().Float64Var(&density, "density", 0.3, "probability of a cell to be blocked")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVarP(&output, "output", "o", "grid.txt", "output file")
	return cmd
}

func randomGrid(rows, cols int, density float64, seed int64) (*grid.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", rows, cols)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("density %v is not within [0, 1]", density)
	}
	rng := rand.New(rand.NewSource(seed))

	cells := make([][]grid.Cell, rows)
	for row := range cells {
		cells[row] = make([]grid.Cell, cols)
		for col := range cells[row] {
			if rng.Float64() < density {
				cells[row][col] = grid.Blocked
			}
		}
	}
	cells[0][0] = grid.Free
	return grid.NewGrid(cells)
}

func newOsmCmd() *cobra.Command {
	var pbfFile, output string
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "osm",
		Short: "Rasterize the obstacles of an OpenStreetMap extract",
		Long: `Rasterize the obstacles of an OpenStreetMap extract.

Ways tagged as building, natural=water, waterway or barrier block every cell they
touch. The grid covers the bounding box of all obstacles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pbfFile == "" {
				return fmt.Errorf("no pbf file given (--pbf)")
			}
			out := cmd.OutOrStdout()

			start := time.Now()
			importer := pbf.NewObstacleImporter(pbfFile)
			if err := importer.Import(); err != nil {
				return err
			}
			obstacles := importer.Obstacles()
			fmt.Fprintf(out, "[TIME] Import %d obstacles: %s\n", len(obstacles), time.Since(start))

			start = time.Now()
			bound, err := pbf.Bounds(obstacles)
			if err != nil {
				return err
			}
			g, err := pbf.Rasterize(obstacles, bound, rows, cols)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "[TIME] Rasterize %dx%d grid: %s\n", rows, cols, time.Since(start))

			if err := grid.WriteGrid(g, output); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %dx%d grid with %d obstacles to %s\n", g.Rows(), g.Cols(), len(g.BlockedCells()), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&pbfFile, "pbf", "", "OpenStreetMap PBF file")
	cmd.Flags().IntVar(&rows, "rows", 100, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 100, "number of columns")
	cmd.Flags().StringVarP(&output, "output", "o", "grid.txt", "output file")
	return cmd
}
