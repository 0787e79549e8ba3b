package bptree

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// NodeID addresses a node inside the tree's arena. IDs of released nodes
// are recycled, so an ID is only meaningful until the next mutation.
type NodeID int32

// NoNode marks a missing node: the parent of the root, the ends of the
// leaf chain.
const NoNode NodeID = -1

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindInternal
)

func (k nodeKind) String() string {
	if k == kindLeaf {
		return "leaf"
	}
	return "internal"
}

// node represents an internal or leaf node in the B+ tree.
//
// Internal nodes keep len(children) == len(keys)+1 and keys[i] separates
// children[i] from children[i+1]. Leaves keep their keys sorted and are
// chained left to right through prev/next.
type node[K constraints.Ordered] struct {
	kind   nodeKind
	parent NodeID
	keys   []K

	// internal only
	children []NodeID

	// leaf only
	prev NodeID
	next NodeID
}

func (n *node[K]) isLeaf() bool { return n.kind == kindLeaf }

// search performs a binary search in the node keys for the given key
// and returns the index of the first key >= key and a flag indicating
// whether that key equals the searched one. For internal nodes the index
// is also the child to descend into.
func (n *node[K]) search(key K) (idx int, found bool) {
	left, right := 0, len(n.keys)
	for left < right {
		mid := (left + right) / 2
		if n.keys[mid] < key {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left, left < len(n.keys) && n.keys[left] == key
}

// searchAfter returns the index of the first key > key, the slot where a
// new duplicate of key lands behind the existing ones.
func (n *node[K]) searchAfter(key K) int {
	left, right := 0, len(n.keys)
	for left < right {
		mid := (left + right) / 2
		if n.keys[mid] <= key {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// childIndex returns the position of child id in n.children.
func (n *node[K]) childIndex(id NodeID) int {
	for i, c := range n.children {
		if c == id {
			return i
		}
	}
	panic(errors.Wrapf(ErrCorrupted, "node %d is not a child of its parent", id))
}

func (n *node[K]) insertKey(idx int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[idx+1:], n.keys[idx:])
	n.keys[idx] = key
}

func (n *node[K]) insertChild(idx int, id NodeID) {
	n.children = append(n.children, NoNode)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = id
}

func (n *node[K]) appendKey(key K) {
	n.keys = append(n.keys, key)
}

func (n *node[K]) appendChild(id NodeID) {
	n.children = append(n.children, id)
}

// removeKeys removes keys in [from, to) and returns a copy of them.
func (n *node[K]) removeKeys(from, to int) []K {
	k := append(make([]K, 0, to-from), n.keys[from:to]...)
	n.keys = append(n.keys[:from], n.keys[to:]...)
	return k
}

// removeChildren removes children in [from, to) and returns a copy of them.
func (n *node[K]) removeChildren(from, to int) []NodeID {
	c := append(make([]NodeID, 0, to-from), n.children[from:to]...)
	n.children = append(n.children[:from], n.children[to:]...)
	return c
}

func (n *node[K]) String() string {
	s := "{"
	for i, k := range n.keys {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v", k)
	}
	s += "} "
	if n.isLeaf() {
		s += fmt.Sprintf("[size=%d, leaf=true, %d<-n->%d]", len(n.keys), n.prev, n.next)
	} else {
		s += fmt.Sprintf("[size=%d, leaf=false, children=%v]", len(n.keys), n.children)
	}
	return s
}
