package path

import (
	"fmt"

	"github.com/natevvv/grid-path-search/pkg/grid"
)

// NodeId addresses a node inside its SearchTree.
type NodeId = int

// NoNode is the parent of a root node and the terminal of an unsuccessful search.
const NoNode NodeId = -1

// SearchNode is one cell visited during a search run.
type SearchNode struct {
	position grid.Position // position of the visited cell
	parent   NodeId        // node which generated this node, NoNode for the root
	depth    int           // number of moves from the root
	g        float64       // cost from the origin (unit moves, equals depth)
	h        float64       // estimated remaining cost, only set by A*
}

func (n *SearchNode) Position() grid.Position { return n.position }
func (n *SearchNode) Parent() NodeId          { return n.parent }
func (n *SearchNode) Depth() int              { return n.depth }
func (n *SearchNode) G() float64              { return n.g }
func (n *SearchNode) H() float64              { return n.h }
func (n *SearchNode) F() float64              { return n.g + n.h }
func (n *SearchNode) String() string {
	return fmt.Sprintf("%v (depth %v, parent %v)", n.position, n.depth, n.parent)
}

// SearchTree owns all nodes of a single search run. Parents always have a lower id than
// their children, so walking parent ids terminates at the root.
// Pointers returned by Node are only valid until the next node is added.
type SearchTree struct {
	nodes []SearchNode
}

func NewSearchTree(capacity int) *SearchTree {
	return &SearchTree{nodes: make([]SearchNode, 0, capacity)}
}

func (t *SearchTree) Len() int { return len(t.nodes) }

func (t *SearchTree) Node(id NodeId) *SearchNode {
	if id < 0 || id >= len(t.nodes) {
		panic(fmt.Sprintf("NodeId %d is not contained in the search tree.", id))
	}
	return &t.nodes[id]
}

// AddRoot adds a node without parent at depth 0.
func (t *SearchTree) AddRoot(p grid.Position) NodeId {
	t.nodes = append(t.nodes, SearchNode{position: p, parent: NoNode})
	return len(t.nodes) - 1
}

// AddChild adds a node one move below parent.
func (t *SearchTree) AddChild(parent NodeId, p grid.Position) NodeId {
	pn := t.Node(parent)
	child := SearchNode{position: p, parent: parent, depth: pn.depth + 1, g: pn.g + 1}
	t.nodes = append(t.nodes, child)
	return len(t.nodes) - 1
}

func (t *SearchTree) setHeuristic(id NodeId, h float64) {
	t.Node(id).h = h
}
