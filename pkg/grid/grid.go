package grid

import (
	"fmt"
	"strings"
)

type Cell uint8

const (
	Free Cell = iota
	Blocked
)

func (c Cell) String() string {
	if c == Blocked {
		return "1"
	}
	return "0"
}

// Grid is an immutable rows x cols table of free and blocked cells.
// Cells are stored in row-major order, the index of (row, col) is row*cols+col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid from the given rows. All rows must have the same length.
// The input is copied.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	cells := make([]Cell, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", i, len(row), cols, ErrRaggedGrid)
		}
		cells = append(cells, row...)
	}
	return &Grid{rows: len(rows), cols: cols, cells: cells}, nil
}

// Return the number of rows
func (g *Grid) Rows() int { return g.rows }

// Return the number of columns
func (g *Grid) Cols() int { return g.cols }

// Return the total number of cells
func (g *Grid) CellCount() int { return len(g.cells) }

func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsFree reports whether p lies inside the grid and is not blocked.
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] == Free
}

// Get the cell at the given position
func (g *Grid) Cell(p Position) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("Position %v is not contained in the grid.", p))
	}
	return g.cells[g.Index(p)]
}

// Index returns the row-major index of p. p is not checked.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionAt is the inverse of Index
func (g *Grid) PositionAt(index int) Position {
	return Position{Row: index / g.cols, Col: index % g.cols}
}

// BlockedCells returns all blocked positions in row-major order
func (g *Grid) BlockedCells() []Position {
	blocked := make([]Position, 0)
	for i, c := range g.cells {
		if c == Blocked {
			blocked = append(blocked, g.PositionAt(i))
		}
	}
	return blocked
}

// CheckPosition returns an error if p is not a valid search endpoint.
func (g *Grid) CheckPosition(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%v in %dx%d grid: %w", p, g.rows, g.cols, ErrOutOfBounds)
	}
	if g.cells[g.Index(p)] == Blocked {
		return fmt.Errorf("%v: %w", p, ErrBlocked)
	}
	return nil
}

// Returns the grid in its textual form, one row per line with comma separated cells.
func (g *Grid) AsString() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) * 2)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if col > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(g.cells[row*g.cols+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
