package path

import (
	"log"
	"math"
	"math/big"
	"math/bits"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/queue"
	"github.com/natevvv/grid-path-search/pkg/slice"
)

// DepthFirstSearch is a depth bounded variant of depth first search.
//
// The depth limit starts at 0 and grows by one per round. The round with limit l makes
// exactly 2^l extraction attempts, however many nodes on the stack are within the limit.
// An attempt removes the most recently pushed node with depth <= l from the stack. If there
// is none, the node at the bottom of the stack is expanded in place without being removed,
// or the previously expanded node if the stack is empty.
//
// An expanded node is marked as visited and generates its children. Children accumulate:
// a node expanded a second time keeps the children of its first expansion and appends new
// ones. Every child in the list counts as one expansion. A child at the destination ends
// the search immediately, all other children are pushed unless their cell was visited
// already. The search fails once the stack is empty at the start of a round.
type DepthFirstSearch struct {
	g *grid.Grid
	searchKPIs

	debugLevel int // debug level for logging purpose
}

func NewDepthFirstSearch(g *grid.Grid) *DepthFirstSearch {
	return &DepthFirstSearch{g: g}
}

// dfsRun is the state of a single computation.
type dfsRun struct {
	tree     *SearchTree
	visited  slice.FixedSizeSlice
	stack    *queue.Stack[NodeId]
	children map[NodeId][]NodeId // all children generated by a node, in generation order
	rounds   map[NodeId]int      // number of times a node was expanded
	repeated map[NodeId]int      // children of expansions which were only counted
}

func (d *DepthFirstSearch) ComputeShortestPath(origin, destination grid.Position) int {
	d.reset()
	if d.debugLevel >= 1 {
		log.Printf("New search (DFS): %v -> %v\n", origin, destination)
	}

	tree := NewSearchTree(d.g.CellCount())
	run := &dfsRun{
		tree:     tree,
		visited:  slice.MakeFixedSizeSlice(d.g.CellCount()),
		stack:    queue.NewStack(tree.AddRoot(origin)),
		children: make(map[NodeId][]NodeId),
		rounds:   make(map[NodeId]int),
		repeated: make(map[NodeId]int),
	}

	current := NoNode
	terminal := NoNode
	for limit := 0; !run.stack.IsEmpty() && terminal == NoNode; limit++ {
		withinLimit := func(id NodeId) bool { return tree.Node(id).Depth() <= limit }
		attempts := extractionAttempts(limit)
		if d.debugLevel >= 2 {
			log.Printf("Depth limit %v, stack size %v\n", limit, run.stack.Len())
		}

		for attempt := 0; attempt < attempts && terminal == NoNode; attempt++ {
			if next, ok := run.stack.Last(withinLimit); ok {
				run.stack.Remove(next)
				current = next
			} else {
				if bottom, ok := run.stack.Bottom(); ok {
					current = bottom
				}
				if d.isSettled(run, current) {
					// Nothing changes anymore until the round ends apart from the counter.
					d.repeat(run, current, attempts-attempt)
					break
				}
			}
			terminal = d.expand(run, current, destination)
		}
	}

	if terminal == NoNode {
		if d.debugLevel >= 1 {
			log.Printf("No path found after %v expansions\n", d.expansions)
		}
		return -1
	}
	d.path = ReconstructPath(tree, terminal, origin)
	return len(d.path) - 1
}

// expand expands id and returns the child at the destination, or NoNode.
func (d *DepthFirstSearch) expand(run *dfsRun, id NodeId, destination grid.Position) NodeId {
	position := run.tree.Node(id).Position()
	run.visited.Add(d.g.Index(position))
	d.searchSpace = append(d.searchSpace, position)
	if d.debugLevel >= 2 {
		log.Printf("Expanding %v\n", run.tree.Node(id))
	}

	run.rounds[id]++
	run.children[id] = append(run.children[id], Expand(d.g, run.tree, id)...)
	d.expansions = saturatingAdd(d.expansions, run.repeated[id])
	for _, child := range run.children[id] {
		d.expansions = saturatingAdd(d.expansions, 1)
		childPosition := run.tree.Node(child).Position()
		if childPosition == destination {
			return child
		}
		if !run.visited.Has(d.g.Index(childPosition)) {
			run.stack.Push(child)
		}
	}
	return NoNode
}

// isSettled reports whether expanding id can neither push a node nor reach the destination.
// The destination is never visited, so it is not a neighbor of a settled node.
func (d *DepthFirstSearch) isSettled(run *dfsRun, id NodeId) bool {
	for _, neighbor := range Neighbors(d.g, run.tree.Node(id).Position()) {
		if !run.visited.Has(d.g.Index(neighbor)) {
			return false
		}
	}
	return true
}

// repeat accounts for expanding the settled node id the given number of times in a row.
func (d *DepthFirstSearch) repeat(run *dfsRun, id NodeId, repetitions int) {
	position := run.tree.Node(id).Position()
	run.visited.Add(d.g.Index(position))
	d.searchSpace = append(d.searchSpace, position)
	if d.debugLevel >= 2 {
		log.Printf("Expanding %v %v times\n", run.tree.Node(id), repetitions)
	}

	perRound := len(Neighbors(d.g, position))
	expansions := repeatedExpansions(perRound, run.rounds[id], repetitions)
	d.expansions = saturatingAdd(d.expansions, expansions)
	run.repeated[id] = saturatingAdd(run.repeated[id], saturatingMul(perRound, repetitions))
	run.rounds[id] = saturatingAdd(run.rounds[id], repetitions)
}

// repeatedExpansions returns the children counted by expanding a node another repetitions
// times, given that it generates perRound children each time and was expanded done times
// before: the sum of (done+m)*perRound for m = 1..repetitions. Saturated at math.MaxInt.
func repeatedExpansions(perRound, done, repetitions int) int {
	r := big.NewInt(int64(repetitions))
	total := new(big.Int).Add(r, big.NewInt(1))
	total.Mul(total, r)
	total.Rsh(total, 1)
	total.Add(total, new(big.Int).Mul(r, big.NewInt(int64(done))))
	total.Mul(total, big.NewInt(int64(perRound)))
	if !total.IsInt64() || total.Int64() > math.MaxInt {
		return math.MaxInt
	}
	return int(total.Int64())
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func saturatingMul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

// extractionAttempts returns 2^limit, saturated at math.MaxInt.
func extractionAttempts(limit int) int {
	if limit >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << limit
}

func (d *DepthFirstSearch) SetDebugLevel(level int) { d.debugLevel = level }
func (d *DepthFirstSearch) GetGrid() *grid.Grid     { return d.g }
func (d *DepthFirstSearch) Algorithm() Algorithm    { return DFS }
