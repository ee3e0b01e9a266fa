package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Overlay grids of the same size",
		Long: `Overlay grids of the same size.

A cell of the result is blocked if it is blocked in any of the input grids.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			start := time.Now()
			grids := make([]*grid.Grid, 0, len(args))
			for _, filename := range args {
				g, err := grid.NewGridFromFile(filename)
				if err != nil {
					return err
				}
				grids = append(grids, g)
			}
			fmt.Fprintf(out, "[TIME] Import %d grids: %s\n", len(grids), time.Since(start))

			merged, err := mergeGrids(grids...)
			if err != nil {
				return err
			}
			if err := grid.WriteGrid(merged, output); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %dx%d grid with %d obstacles to %s\n", merged.Rows(), merged.Cols(), len(merged.BlockedCells()), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "grid.txt", "output file")
	return cmd
}

func mergeGrids(grids ...*grid.Grid) (*grid.Grid, error) {
	if len(grids) == 0 {
		return nil, errors.New("no grids to merge")
	}
	rows, cols := grids[0].Rows(), grids[0].Cols()

	cells := make([][]grid.Cell, rows)
	for row := range cells {
		cells[row] = make([]grid.Cell, cols)
	}
	for i, g := range grids {
		if g.Rows() != rows || g.Cols() != cols {
			return nil, fmt.Errorf("grid %d has size %dx%d, expected %dx%d", i, g.Rows(), g.Cols(), rows, cols)
		}
		for _, p := range g.BlockedCells() {
			cells[p.Row][p.Col] = grid.Blocked
		}
	}
	return grid.NewGrid(cells)
}
