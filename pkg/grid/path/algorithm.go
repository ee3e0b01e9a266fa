package path

import "strings"

type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	AStar
)

// Algorithms lists all search strategies in the order they are compared.
var Algorithms = []Algorithm{BFS, DFS, AStar}

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AStar:
		return "A*"
	}
	return "INVALID"
}

// ParseAlgorithm accepts the names returned by String (case insensitive) and "astar".
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BFS":
		return BFS, true
	case "DFS":
		return DFS, true
	case "A*", "ASTAR":
		return AStar, true
	}
	return -1, false
}
