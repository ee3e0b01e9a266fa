package path

import "fmt"

// implements queue.Priorizable
type AStarItem struct {
	nodeId   NodeId  // node in the search tree
	cell     int     // grid index of the node's position
	g        float64 // cost from the origin
	f        float64 // g plus heuristic
	sequence int     // insertion counter, earlier items win ties
	index    int     // internal usage
}

func NewAStarItem(nodeId NodeId, cell int, g, f float64, sequence int) *AStarItem {
	return &AStarItem{nodeId: nodeId, cell: cell, g: g, f: f, sequence: sequence, index: -1}
}

func (item *AStarItem) NodeId() NodeId     { return item.nodeId }
func (item *AStarItem) Priority() float64  { return item.f }
func (item *AStarItem) Sequence() int      { return item.sequence }
func (item *AStarItem) Index() int         { return item.index }
func (item *AStarItem) SetIndex(index int) { item.index = index }
func (item *AStarItem) String() string {
	return fmt.Sprintf("%v: %v, %v", item.index, item.nodeId, item.Priority())
}
