package path

import "github.com/natevvv/grid-path-search/pkg/grid"

// Navigator is implemented by every search strategy. Each call of ComputeShortestPath
// starts from a fresh search state; the getters report on the most recent computation.
// Origin and destination are expected to be distinct free cells (see routing.Router).
type Navigator interface {
	ComputeShortestPath(origin, destination grid.Position) int // Compute a path from origin to destination. Returns its number of moves or -1 if none was found
	GetPath() []grid.Position                                  // Get the path of the previous computation, from origin to destination. Empty if none was found
	GetExpansions() int                                        // Get the number of expansions the previous computation performed
	GetSearchSpace() []grid.Position                           // Returns the cells taken from the frontier, in order
	GetGrid() *grid.Grid                                       // Get the used grid
	Algorithm() Algorithm                                      // Get the implemented search strategy
}

// Result summarizes one search run.
type Result struct {
	Algorithm  Algorithm
	Found      bool
	Path       []grid.Position // origin..destination inclusive, empty if not found
	Expansions int
}

// NewNavigator creates the navigator implementing the given algorithm.
func NewNavigator(algorithm Algorithm, g *grid.Grid) Navigator {
	switch algorithm {
	case BFS:
		return NewBreadthFirstSearch(g)
	case DFS:
		return NewDepthFirstSearch(g)
	case AStar:
		return NewAStarSearch(g)
	}
	panic("unknown algorithm " + algorithm.String())
}

// Search runs n once and collects the outcome.
func Search(n Navigator, origin, destination grid.Position) Result {
	length := n.ComputeShortestPath(origin, destination)
	result := Result{Algorithm: n.Algorithm(), Found: length >= 0, Expansions: n.GetExpansions()}
	if result.Found {
		result.Path = n.GetPath()
	}
	return result
}

// searchKPIs holds the outcome of the previous computation of a navigator.
type searchKPIs struct {
	path        []grid.Position
	expansions  int
	searchSpace []grid.Position
}

// Reset the kpi
func (kpi *searchKPIs) reset() {
	kpi.path = nil
	kpi.expansions = 0
	kpi.searchSpace = make([]grid.Position, 0)
}

func (kpi *searchKPIs) GetPath() []grid.Position {
	path := make([]grid.Position, len(kpi.path))
	copy(path, kpi.path)
	return path
}
func (kpi *searchKPIs) GetExpansions() int              { return kpi.expansions }
func (kpi *searchKPIs) GetSearchSpace() []grid.Position { return kpi.searchSpace }
