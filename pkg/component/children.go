package component

import (
	"iter"
	"slices"
)

// Children is a read-only, ordered view of a component's child nodes.
// Each Children owns its backing array; no accessor exposes it.
type Children struct {
	nodes []Node
}

// NewChildren returns a Children holding a copy of nodes.
func NewChildren(nodes ...Node) Children {
	if len(nodes) == 0 {
		return Children{}
	}
	return Children{nodes: slices.Clone(nodes)}
}

// Len returns the number of children.
func (c Children) Len() int {
	return len(c.nodes)
}

// At returns the child at index i. It panics if i is out of range.
func (c Children) At(i int) Node {
	return c.nodes[i]
}

// All iterates over the children in insertion order.
func (c Children) All() iter.Seq2[int, Node] {
	return slices.All(c.nodes)
}

// Slice returns a new slice holding the children.
func (c Children) Slice() []Node {
	return slices.Clone(c.nodes)
}
