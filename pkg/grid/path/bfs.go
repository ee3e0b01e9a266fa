package path

import (
	"log"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/queue"
	"github.com/natevvv/grid-path-search/pkg/slice"
)

// BreadthFirstSearch expands cells in the order they were discovered. Cells are marked
// as visited when they are enqueued, so the first time the destination is dequeued it was
// reached with the minimal number of moves.
type BreadthFirstSearch struct {
	g *grid.Grid
	searchKPIs

	debugLevel int // debug level for logging purpose
}

func NewBreadthFirstSearch(g *grid.Grid) *BreadthFirstSearch {
	return &BreadthFirstSearch{g: g}
}

func (b *BreadthFirstSearch) ComputeShortestPath(origin, destination grid.Position) int {
	b.reset()
	if b.debugLevel >= 1 {
		log.Printf("New search (BFS): %v -> %v\n", origin, destination)
	}

	tree := NewSearchTree(b.g.CellCount())
	visited := slice.MakeFixedSizeSlice(b.g.CellCount())
	frontier := queue.NewFifo(tree.AddRoot(origin))
	visited.Add(b.g.Index(origin))

	terminal := NoNode
	for !frontier.IsEmpty() {
		current := frontier.Pop()
		position := tree.Node(current).Position()
		b.expansions++
		b.searchSpace = append(b.searchSpace, position)
		if b.debugLevel >= 2 {
			log.Printf("Expanding %v\n", tree.Node(current))
		}

		if position == destination {
			terminal = current
			break
		}

		for _, child := range Expand(b.g, tree, current) {
			cell := b.g.Index(tree.Node(child).Position())
			if visited.Has(cell) {
				continue
			}
			visited.Add(cell)
			frontier.Push(child)
		}
	}

	if terminal == NoNode {
		if b.debugLevel >= 1 {
			log.Printf("No path found after %v expansions, visited %.2f%% of the grid\n", b.expansions, visited.Ratio()*100)
		}
		return -1
	}
	b.path = ReconstructPath(tree, terminal, origin)
	return len(b.path) - 1
}

func (b *BreadthFirstSearch) SetDebugLevel(level int) { b.debugLevel = level }
func (b *BreadthFirstSearch) GetGrid() *grid.Grid     { return b.g }
func (b *BreadthFirstSearch) Algorithm() Algorithm    { return BFS }
