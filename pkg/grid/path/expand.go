package path

import "github.com/natevvv/grid-path-search/pkg/grid"

type Direction int

const (
	Down Direction = iota
	Right
	Up
	Left
)

// expansionOrder determines tie-breaking of all strategies and must not change.
var expansionOrder = [...]Direction{Down, Right, Up, Left}

func (d Direction) String() string {
	switch d {
	case Down:
		return "DOWN"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	}
	return "INVALID"
}

// Delta returns the row and column offset of a move in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	}
	panic("invalid direction")
}

// Neighbors returns the free cells reachable from p by a single move, in the order down,
// right, up, left.
func Neighbors(g *grid.Grid, p grid.Position) []grid.Position {
	neighbors := make([]grid.Position, 0, len(expansionOrder))
	for _, direction := range expansionOrder {
		if next := p.Offset(direction.Delta()); g.IsFree(next) {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// Expand creates the children of parent in the order down, right, up, left.
// Neighbors outside the grid or blocked by an obstacle are skipped.
func Expand(g *grid.Grid, tree *SearchTree, parent NodeId) []NodeId {
	neighbors := Neighbors(g, tree.Node(parent).Position())
	children := make([]NodeId, 0, len(neighbors))
	for _, next := range neighbors {
		children = append(children, tree.AddChild(parent, next))
	}
	return children
}
