package bptree

import (
	"go-bptree/util/helpers"

	"github.com/sirupsen/logrus"
)

// Insert adds key to the tree. Duplicates are kept, a new key is placed
// behind the equal keys already present in its leaf.
func (tree *BPlusTree[K]) Insert(key K) {
	leafID := tree.locateLeaf(key)
	leaf := tree.node(leafID)
	leaf.insertKey(leaf.searchAfter(key), key)
	tree.size++

	if len(leaf.keys) > tree.maxLeafKeys {
		tree.splitLeaf(leafID)
	}
}

// splitLeaf moves the lower half of an overflowing leaf into a freshly
// allocated left sibling and hands the first key of the remaining right
// half to the parent as the new separator.
func (tree *BPlusTree[K]) splitLeaf(id NodeID) {
	n := tree.node(id)
	breakPoint := helpers.CeilDiv(tree.maxLeafKeys+1, 2)

	leftID, left := tree.alloc(kindLeaf)
	left.keys = append(left.keys, n.removeKeys(0, breakPoint)...)

	left.prev = n.prev
	left.next = id
	if n.prev != NoNode {
		tree.node(n.prev).next = leftID
	}
	n.prev = leftID

	tree.log.WithFields(logrus.Fields{
		"node":  id,
		"left":  leftID,
		"kind":  kindLeaf,
		"split": breakPoint,
	}).Debug("node split")

	tree.insertIntoInternal(n.parent, n.keys[0], leftID, id)
}

// insertIntoInternal links leftID into parentID right before rightID with
// key as the separator between them. A nil parent means rightID was the
// root, so a new root is grown first. Overflowing parents are split and
// the promoted separator is carried one level up until a node has room.
func (tree *BPlusTree[K]) insertIntoInternal(parentID NodeID, key K, leftID, rightID NodeID) {
	for {
		if parentID == NoNode {
			var root *node[K]
			parentID, root = tree.alloc(kindInternal)
			root.appendChild(rightID)
			tree.root = parentID
			tree.log.WithField("node", parentID).Debug("new root")
		}

		p := tree.node(parentID)
		idx := p.childIndex(rightID)
		p.insertChild(idx, leftID)
		p.insertKey(idx, key)
		tree.node(leftID).parent = parentID
		tree.node(rightID).parent = parentID

		if len(p.children) <= tree.maxChildren {
			return
		}

		key, leftID = tree.splitInternal(parentID)
		rightID = parentID
		parentID = p.parent
	}
}

// splitInternal removes the middle separator of an overflowing internal
// node, moves the children and separators before it into a new left
// sibling and returns the removed separator together with that sibling.
func (tree *BPlusTree[K]) splitInternal(id NodeID) (K, NodeID) {
	n := tree.node(id)

	// separator index mid leaves mid+1 children on the left, which is
	// always a valid child boundary
	mid := len(n.children)/2 - 1
	key := n.keys[mid]

	leftID, left := tree.alloc(kindInternal)
	left.keys = append(left.keys, n.removeKeys(0, mid+1)[:mid]...)
	left.children = append(left.children, n.removeChildren(0, mid+1)...)
	for _, child := range left.children {
		tree.node(child).parent = leftID
	}

	tree.log.WithFields(logrus.Fields{
		"node":  id,
		"left":  leftID,
		"kind":  kindInternal,
		"split": mid,
	}).Debug("node split")

	return key, leftID
}
