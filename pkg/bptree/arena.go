package bptree

import (
	"go-bptree/util/stl"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// arena owns every node of a tree. Nodes reference each other by NodeID,
// released slots are kept on a free list and handed out again by alloc.
type arena[K constraints.Ordered] struct {
	nodes []*node[K]
	free  stl.Stack[NodeID]
}

func newArena[K constraints.Ordered]() *arena[K] {
	return &arena[K]{
		nodes: make([]*node[K], 0),
		free:  stl.NewStack[NodeID](),
	}
}

func (a *arena[K]) alloc(kind nodeKind, capacity int) NodeID {
	n := &node[K]{
		kind:   kind,
		parent: NoNode,
		prev:   NoNode,
		next:   NoNode,
		keys:   make([]K, 0, capacity),
	}
	if kind == kindInternal {
		n.children = make([]NodeID, 0, capacity+1)
	}

	id, err := a.free.Pop()
	if err != nil {
		id = NodeID(len(a.nodes))
		a.nodes = append(a.nodes, n)
		return id
	}

	a.nodes[id] = n
	return id
}

func (a *arena[K]) get(id NodeID) *node[K] {
	if id < 0 || int(id) >= len(a.nodes) || a.nodes[id] == nil {
		panic(errors.Wrapf(ErrCorrupted, "dangling node reference %d", id))
	}
	return a.nodes[id]
}

func (a *arena[K]) release(id NodeID) {
	a.get(id)
	a.nodes[id] = nil
	a.free.Push(id)
}

// live returns the number of allocated, not yet released nodes.
func (a *arena[K]) live() int {
	return len(a.nodes) - a.free.Size()
}
