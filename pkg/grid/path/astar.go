package path

import (
	"log"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/queue"
	"github.com/natevvv/grid-path-search/pkg/slice"
)

// AStarSearch always expands the open node with the least f = g + h, where h is the
// euclidean distance to the destination. Ties go to the node which was opened first.
//
// The destination itself is never opened: as soon as it is generated as a child, the node
// being expanded becomes the anchor of the path and the search stops.
type AStarSearch struct {
	g *grid.Grid
	searchKPIs

	debugLevel int // debug level for logging purpose
}

func NewAStarSearch(g *grid.Grid) *AStarSearch {
	return &AStarSearch{g: g}
}

// openSet keeps the frontier ordered by (f, insertion) and indexed by cell.
// A cell may be open several times with different costs.
type openSet struct {
	minHeap  *queue.MinHeap[*AStarItem]
	byCell   map[int][]*AStarItem
	sequence int
}

func newOpenSet() *openSet {
	return &openSet{minHeap: queue.NewMinHeap[*AStarItem](nil), byCell: make(map[int][]*AStarItem)}
}

func (o *openSet) Len() int { return o.minHeap.Len() }

func (o *openSet) push(nodeId NodeId, cell int, node *SearchNode) {
	item := NewAStarItem(nodeId, cell, node.G(), node.F(), o.sequence)
	o.sequence++
	o.minHeap.Push(item)
	o.byCell[cell] = append(o.byCell[cell], item)
}

func (o *openSet) pop() *AStarItem {
	item := o.minHeap.Pop()
	items := o.byCell[item.cell]
	for i, other := range items {
		if other == item {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}
	if len(items) == 0 {
		delete(o.byCell, item.cell)
	} else {
		o.byCell[item.cell] = items
	}
	return item
}

// hasEntryNotWorse reports whether the cell is open with a cost of at most g.
func (o *openSet) hasEntryNotWorse(cell int, g float64) bool {
	for _, item := range o.byCell[cell] {
		if item.g <= g {
			return true
		}
	}
	return false
}

func (a *AStarSearch) ComputeShortestPath(origin, destination grid.Position) int {
	a.reset()
	if a.debugLevel >= 1 {
		log.Printf("New search (A*): %v -> %v\n", origin, destination)
	}

	tree := NewSearchTree(a.g.CellCount())
	closed := slice.MakeFixedSizeSlice(a.g.CellCount())
	open := newOpenSet()

	root := tree.AddRoot(origin)
	tree.setHeuristic(root, grid.EuclideanDistance(origin, destination))
	open.push(root, a.g.Index(origin), tree.Node(root))

	anchor := NoNode
	for open.Len() > 0 {
		item := open.pop()
		current := item.NodeId()
		position := tree.Node(current).Position()
		a.expansions++
		a.searchSpace = append(a.searchSpace, position)
		if a.debugLevel >= 2 {
			log.Printf("Expanding %v, item %v\n", tree.Node(current), item)
		}

		found := false
		for _, child := range Expand(a.g, tree, current) {
			childNode := tree.Node(child)
			childPosition := childNode.Position()
			if childPosition == destination {
				found = true
				break
			}

			cell := a.g.Index(childPosition)
			if closed.Has(cell) {
				continue
			}
			tree.setHeuristic(child, grid.EuclideanDistance(childPosition, destination))
			if open.hasEntryNotWorse(cell, childNode.G()) {
				continue
			}
			open.push(child, cell, childNode)
		}

		closed.Add(item.cell)
		if found {
			anchor = current
			break
		}
	}

	if anchor == NoNode {
		if a.debugLevel >= 1 {
			log.Printf("No path found after %v expansions\n", a.expansions)
		}
		return -1
	}
	a.path = append(ReconstructPath(tree, anchor, origin), destination)
	return len(a.path) - 1
}

func (a *AStarSearch) SetDebugLevel(level int) { a.debugLevel = level }
func (a *AStarSearch) GetGrid() *grid.Grid     { return a.g }
func (a *AStarSearch) Algorithm() Algorithm    { return AStar }
