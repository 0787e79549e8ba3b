package bptree

import (
	"go-bptree/util/helpers"
	"go-bptree/util/stl"

	"github.com/pkg/errors"
)

type frame[K any] struct {
	id           NodeID
	depth        int
	lo, hi       K
	hasLo, hasHi bool
}

// Validate walks the whole tree and checks its structural invariants:
// sorted keys, separators bounding their sub-trees, leaves at equal depth,
// node sizes within the limits (root exempt from minimums), consistent
// parent references and leaf chain, and the key counter. The first
// violation is returned wrapped in ErrCorrupted.
func (tree *BPlusTree[K]) Validate() error {
	if p := tree.node(tree.root).parent; p != NoNode {
		return errors.Wrapf(ErrCorrupted, "root %d has parent %d", tree.root, p)
	}

	st := stl.NewStack[frame[K]]()
	st.Push(frame[K]{id: tree.root})

	leafDepth := -1
	keys := 0
	visited := 0
	leaves := make([]NodeID, 0)

	for st.Size() > 0 {
		f, _ := st.Pop()
		n := tree.node(f.id)
		visited++

		if !helpers.IsSorted(n.keys) {
			return errors.Wrapf(ErrCorrupted, "node %d keys out of order: %v", f.id, n.keys)
		}
		if len(n.keys) > 0 {
			if f.hasLo && n.keys[0] < f.lo {
				return errors.Wrapf(ErrCorrupted, "node %d key %v below separator %v", f.id, n.keys[0], f.lo)
			}
			if last := n.keys[len(n.keys)-1]; f.hasHi && last > f.hi {
				return errors.Wrapf(ErrCorrupted, "node %d key %v above separator %v", f.id, last, f.hi)
			}
		}

		if n.isLeaf() {
			if err := tree.validateLeafSize(f.id, n); err != nil {
				return err
			}
			if leafDepth == -1 {
				leafDepth = f.depth
			} else if leafDepth != f.depth {
				return errors.Wrapf(ErrCorrupted, "leaf %d at depth %d, expected %d", f.id, f.depth, leafDepth)
			}
			keys += len(n.keys)
			leaves = append(leaves, f.id)
			continue
		}

		if err := tree.validateInternalSize(f.id, n); err != nil {
			return err
		}

		// push right to left so leaves pop in key order
		for i := len(n.children) - 1; i >= 0; i-- {
			child := n.children[i]
			if p := tree.node(child).parent; p != f.id {
				return errors.Wrapf(ErrCorrupted, "node %d has parent %d, expected %d", child, p, f.id)
			}

			cf := frame[K]{
				id:    child,
				depth: f.depth + 1,
				lo:    f.lo,
				hi:    f.hi,
				hasLo: f.hasLo,
				hasHi: f.hasHi,
			}
			if i > 0 {
				cf.lo, cf.hasLo = n.keys[i-1], true
			}
			if i < len(n.keys) {
				cf.hi, cf.hasHi = n.keys[i], true
			}
			st.Push(cf)
		}
	}

	if err := tree.validateLeafChain(leaves); err != nil {
		return err
	}
	if keys != tree.size {
		return errors.Wrapf(ErrCorrupted, "leaves hold %d keys, size is %d", keys, tree.size)
	}
	if live := tree.nodes.live(); live != visited {
		return errors.Wrapf(ErrCorrupted, "%d nodes reachable, %d allocated", visited, live)
	}
	return nil
}

func (tree *BPlusTree[K]) validateLeafSize(id NodeID, n *node[K]) error {
	if len(n.keys) > tree.maxLeafKeys {
		return errors.Wrapf(ErrCorrupted, "leaf %d holds %d keys, max %d", id, len(n.keys), tree.maxLeafKeys)
	}
	if id != tree.root && len(n.keys) < tree.minLeafKeys {
		return errors.Wrapf(ErrCorrupted, "leaf %d holds %d keys, min %d", id, len(n.keys), tree.minLeafKeys)
	}
	return nil
}

func (tree *BPlusTree[K]) validateInternalSize(id NodeID, n *node[K]) error {
	if len(n.children) != len(n.keys)+1 {
		return errors.Wrapf(ErrCorrupted, "node %d has %d children for %d keys", id, len(n.children), len(n.keys))
	}

	minChildren := tree.minChildren
	if id == tree.root {
		minChildren = 2
	}
	if len(n.children) < minChildren || len(n.children) > tree.maxChildren {
		return errors.Wrapf(
			ErrCorrupted, "node %d has %d children, allowed [%d, %d]",
			id, len(n.children), minChildren, tree.maxChildren,
		)
	}
	return nil
}

// validateLeafChain checks that following next from the left most leaf
// visits exactly the leaves found by the depth-first walk, and that prev
// mirrors next.
func (tree *BPlusTree[K]) validateLeafChain(leaves []NodeID) error {
	prev := NoNode
	id := tree.leftLeaf(tree.root)
	for i, want := range leaves {
		if id != want {
			return errors.Wrapf(ErrCorrupted, "leaf chain position %d is %d, expected %d", i, id, want)
		}
		n := tree.node(id)
		if n.prev != prev {
			return errors.Wrapf(ErrCorrupted, "leaf %d prev is %d, expected %d", id, n.prev, prev)
		}
		prev, id = id, n.next
	}
	if id != NoNode {
		return errors.Wrapf(ErrCorrupted, "leaf chain continues past last leaf to %d", id)
	}
	return nil
}
