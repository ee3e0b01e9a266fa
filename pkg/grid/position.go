package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Position addresses a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func MakePosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Point returns the position as planar point (x = column, y = row).
func (p Position) Point() orb.Point {
	return orb.Point{float64(p.Col), float64(p.Row)}
}

// Offset returns the position moved by the given row and column deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// IsAdjacent reports whether q is exactly one cardinal move away from p.
func (p Position) IsAdjacent(q Position) bool {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// EuclideanDistance is the straight line distance between the cell centers of a and b.
// It never exceeds the number of cardinal moves between them.
func EuclideanDistance(a, b Position) float64 {
	if a == b {
		return 0
	}
	return planar.Distance(a.Point(), b.Point())
}

// ParsePosition parses a position written as "ROW,COL" with two non-negative integers.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidPosition)
	}
	coordinates := [2]int{}
	for i, part := range parts {
		if !isNumeric(part) {
			return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidPosition)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidPosition)
		}
		coordinates[i] = value
	}
	return MakePosition(coordinates[0], coordinates[1]), nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
