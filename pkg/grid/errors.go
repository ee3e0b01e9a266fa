package grid

import "errors"

var (
	// ErrInvalidCharacter is returned when the grid input contains a symbol which is
	// neither a cell marker nor a separator.
	ErrInvalidCharacter = errors.New("grid contains invalid character")
	// ErrRaggedGrid is returned when the rows of the grid input differ in length.
	ErrRaggedGrid = errors.New("grid rows differ in length")
	// ErrEmptyGrid is returned when the grid input contains no cells.
	ErrEmptyGrid = errors.New("grid is empty")

	ErrOutOfBounds     = errors.New("position is outside the grid")
	ErrBlocked         = errors.New("position is blocked by an obstacle")
	ErrInvalidPosition = errors.New("position must be given as ROW,COL")
)
