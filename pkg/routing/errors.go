package routing

import "errors"

var (
	// ErrSameOriginDestination is returned when a route is requested from a cell to itself.
	ErrSameOriginDestination = errors.New("origin and destination are the same cell")
	// ErrUnknownMode is returned for a search mode other than BFS, DFS, A* or ALL.
	ErrUnknownMode = errors.New("unknown search mode")
)
