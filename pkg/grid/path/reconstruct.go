package path

import (
	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/slice"
)

// ReconstructPath follows the parents of terminal until a node at start is reached and
// returns the positions from start to terminal.
// It panics if terminal is NoNode, i.e. if it is called for an unsuccessful search.
func ReconstructPath(tree *SearchTree, terminal NodeId, start grid.Position) []grid.Position {
	if terminal == NoNode {
		panic("path reconstruction requested for a search which did not reach the destination")
	}

	path := make([]grid.Position, 0, tree.Node(terminal).Depth()+1)
	for nodeId := terminal; ; {
		node := tree.Node(nodeId)
		path = append(path, node.Position())
		if node.Position() == start {
			break
		}
		nodeId = node.Parent()
		if nodeId == NoNode {
			panic("search tree does not lead back to the start")
		}
	}
	slice.ReverseInPlace(path)
	return path
}
