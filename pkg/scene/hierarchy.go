package scene

import (
	"github.com/zeusync/gametools/pkg/sequence"
	"github.com/zeusync/gametools/pkg/vector"
)

// Node is an element of the transform hierarchy. Every node is owned by
// exactly one Entity.
type Node interface {
	vector.Positioned
	ChildCount() int
	Child(index int) Node
	Entity() Entity
}

// Entity is an addressable scene object owning exactly one Node.
type Entity interface {
	vector.Positioned
	Name() string
	Node() Node
}

// ChildrenOf returns the direct children of node, in the node's own order.
// Descendants further down are not included. The result is never nil.
// A nil node panics.
func ChildrenOf(node Node) []Node {
	return sequence.Indexed(node.ChildCount(), node.Child).Collect()
}

// ChildrenOfOwner returns the entities owning the direct children of the
// entity's node, preserving child order.
func ChildrenOfOwner(entity Entity) []Entity {
	return sequence.Map(sequence.From(ChildrenOf(entity.Node())), Node.Entity).Collect()
}
