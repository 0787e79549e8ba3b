package bptree

import (
	"iter"

	"go-bptree/util/stl"

	"golang.org/x/exp/constraints"
)

// NodeSummary is a snapshot of one node as seen by Traverse. Keys and
// Children are copies and stay valid after the tree changes.
type NodeSummary[K constraints.Ordered] struct {
	ID       NodeID
	Parent   NodeID
	Leaf     bool
	Keys     []K
	Children []NodeID
}

type levelItem struct {
	id    NodeID
	depth int
}

// Traverse returns a level-order walk of the tree yielding every node
// with its depth, root at depth 0 and children left to right. Each range
// over the returned sequence starts a fresh walk. The tree must not be
// modified while a walk is in progress.
func (tree *BPlusTree[K]) Traverse() iter.Seq2[int, NodeSummary[K]] {
	return func(yield func(int, NodeSummary[K]) bool) {
		q := stl.NewQueue[levelItem]()
		q.Push(levelItem{id: tree.root})

		for q.Size() > 0 {
			it, _ := q.Pop()
			n := tree.node(it.id)

			s := NodeSummary[K]{
				ID:     it.id,
				Parent: n.parent,
				Leaf:   n.isLeaf(),
				Keys:   append(make([]K, 0, len(n.keys)), n.keys...),
			}
			if !n.isLeaf() {
				s.Children = append(make([]NodeID, 0, len(n.children)), n.children...)
				for _, child := range n.children {
					q.Push(levelItem{id: child, depth: it.depth + 1})
				}
			}

			if !yield(it.depth, s) {
				return
			}
		}
	}
}

// Ascend calls fn for every key in non-decreasing order until fn returns
// false.
func (tree *BPlusTree[K]) Ascend(fn func(key K) bool) {
	for id := tree.leftLeaf(tree.root); id != NoNode; id = tree.node(id).next {
		for _, key := range tree.node(id).keys {
			if !fn(key) {
				return
			}
		}
	}
}

// Descend calls fn for every key in non-increasing order until fn
// returns false.
func (tree *BPlusTree[K]) Descend(fn func(key K) bool) {
	for id := tree.rightLeaf(tree.root); id != NoNode; id = tree.node(id).prev {
		keys := tree.node(id).keys
		for i := len(keys) - 1; i >= 0; i-- {
			if !fn(keys[i]) {
				return
			}
		}
	}
}

// Keys returns all keys in order.
func (tree *BPlusTree[K]) Keys() []K {
	keys := make([]K, 0, tree.size)
	tree.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
