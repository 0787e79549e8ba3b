package bptree

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Delete removes one occurrence of key. If the key does not exist,
// returns ErrKeyNotFound and the tree is not modified.
func (tree *BPlusTree[K]) Delete(key K) error {
	pos, found := tree.Search(key)
	if !found {
		return errors.Wrapf(ErrKeyNotFound, "delete %v", key)
	}

	leaf := tree.node(pos.Leaf)
	leaf.removeKeys(pos.Index, pos.Index+1)
	tree.size--

	if pos.Leaf == tree.root || len(leaf.keys) >= tree.minLeafKeys {
		return nil
	}

	tree.rebalanceLeaf(pos.Leaf)
	return nil
}

// rebalanceLeaf repairs an underflowing non-root leaf. A sibling with
// spare keys lends one, left sibling first; otherwise the leaf is merged
// with its left sibling, or with its right one when it has no left.
func (tree *BPlusTree[K]) rebalanceLeaf(id NodeID) {
	n := tree.node(id)
	parentID := n.parent
	p := tree.node(parentID)
	idx := p.childIndex(id)

	if idx > 0 {
		leftID := p.children[idx-1]
		if l := tree.node(leftID); len(l.keys) > tree.minLeafKeys {
			tree.borrowKeyFromLeftLeaf(p, idx, n, l)
			tree.logRebalance("borrow left", kindLeaf, id, leftID)
			return
		}
	}

	if idx < len(p.children)-1 {
		rightID := p.children[idx+1]
		if r := tree.node(rightID); len(r.keys) > tree.minLeafKeys {
			tree.borrowKeyFromRightLeaf(p, idx, n, r)
			tree.logRebalance("borrow right", kindLeaf, id, rightID)
			return
		}
	}

	sepIdx := idx
	if idx > 0 {
		sepIdx = idx - 1
	}
	leftID, rightID := p.children[sepIdx], p.children[sepIdx+1]
	tree.mergeLeaves(leftID, rightID)
	tree.logRebalance("merge", kindLeaf, leftID, rightID)

	tree.deleteFromInternal(parentID, sepIdx)
}

func (tree *BPlusTree[K]) borrowKeyFromLeftLeaf(p *node[K], idx int, n, l *node[K]) {
	moved := l.removeKeys(len(l.keys)-1, len(l.keys))
	n.insertKey(0, moved[0])
	p.keys[idx-1] = n.keys[0]
}

func (tree *BPlusTree[K]) borrowKeyFromRightLeaf(p *node[K], idx int, n, r *node[K]) {
	moved := r.removeKeys(0, 1)
	n.appendKey(moved[0])
	p.keys[idx] = r.keys[0]
}

// mergeLeaves appends the keys of rightID to leftID, unlinks rightID from
// the leaf chain and releases it. The parent entry is left to the caller.
func (tree *BPlusTree[K]) mergeLeaves(leftID, rightID NodeID) {
	l := tree.node(leftID)
	r := tree.node(rightID)

	l.keys = append(l.keys, r.keys...)
	l.next = r.next
	if r.next != NoNode {
		tree.node(r.next).prev = leftID
	}

	tree.nodes.release(rightID)
}

// deleteFromInternal removes separator sepIdx and the child right of it
// from node id, then repairs underflow the same way leaves do, moving
// (separator, child) pairs instead of keys. Merges continue one level up,
// an internal root left with a single child is collapsed.
func (tree *BPlusTree[K]) deleteFromInternal(id NodeID, sepIdx int) {
	for {
		n := tree.node(id)
		n.removeKeys(sepIdx, sepIdx+1)
		n.removeChildren(sepIdx+1, sepIdx+2)

		if id == tree.root {
			if len(n.children) == 1 {
				tree.collapseRoot()
			}
			return
		}

		if len(n.children) >= tree.minChildren {
			return
		}

		parentID := n.parent
		p := tree.node(parentID)
		idx := p.childIndex(id)

		if idx > 0 {
			leftID := p.children[idx-1]
			if l := tree.node(leftID); len(l.children) > tree.minChildren {
				tree.borrowChildFromLeftInternal(p, idx, id, n, l)
				tree.logRebalance("borrow left", kindInternal, id, leftID)
				return
			}
		}

		if idx < len(p.children)-1 {
			rightID := p.children[idx+1]
			if r := tree.node(rightID); len(r.children) > tree.minChildren {
				tree.borrowChildFromRightInternal(p, idx, id, n, r)
				tree.logRebalance("borrow right", kindInternal, id, rightID)
				return
			}
		}

		sepIdx = idx
		if idx > 0 {
			sepIdx = idx - 1
		}
		leftID, rightID := p.children[sepIdx], p.children[sepIdx+1]
		tree.mergeInternals(p, sepIdx, leftID, rightID)
		tree.logRebalance("merge", kindInternal, leftID, rightID)

		id = parentID
	}
}

func (tree *BPlusTree[K]) borrowChildFromLeftInternal(p *node[K], idx int, id NodeID, n, l *node[K]) {
	n.insertKey(0, p.keys[idx-1])
	p.keys[idx-1] = l.removeKeys(len(l.keys)-1, len(l.keys))[0]

	child := l.removeChildren(len(l.children)-1, len(l.children))[0]
	n.insertChild(0, child)
	tree.node(child).parent = id
}

func (tree *BPlusTree[K]) borrowChildFromRightInternal(p *node[K], idx int, id NodeID, n, r *node[K]) {
	n.appendKey(p.keys[idx])
	p.keys[idx] = r.removeKeys(0, 1)[0]

	child := r.removeChildren(0, 1)[0]
	n.appendChild(child)
	tree.node(child).parent = id
}

// mergeInternals pulls separator sepIdx of p down into leftID and moves
// every child of rightID behind it. rightID is released, the separator
// and child slot in p are removed by the caller's next iteration.
func (tree *BPlusTree[K]) mergeInternals(p *node[K], sepIdx int, leftID, rightID NodeID) {
	l := tree.node(leftID)
	r := tree.node(rightID)

	l.appendKey(p.keys[sepIdx])
	l.keys = append(l.keys, r.keys...)
	for _, child := range r.children {
		tree.node(child).parent = leftID
		l.appendChild(child)
	}

	tree.nodes.release(rightID)
}

// collapseRoot promotes the only child of an internal root.
func (tree *BPlusTree[K]) collapseRoot() {
	oldRoot := tree.root
	child := tree.node(oldRoot).children[0]

	tree.node(child).parent = NoNode
	tree.root = child
	tree.nodes.release(oldRoot)

	tree.log.WithFields(logrus.Fields{
		"node": child,
		"old":  oldRoot,
	}).Debug("root collapsed")
}

func (tree *BPlusTree[K]) logRebalance(action string, kind nodeKind, id, sibling NodeID) {
	tree.log.WithFields(logrus.Fields{
		"node":    id,
		"sibling": sibling,
		"kind":    kind,
	}).Debug(action)
}
