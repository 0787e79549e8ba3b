package bptree

// Position identifies a key slot inside a leaf. It is valid until the
// next mutation of the tree.
type Position struct {
	Leaf  NodeID
	Index int
}

// Search returns the position of the first occurrence of key.
func (tree *BPlusTree[K]) Search(key K) (Position, bool) {
	id := tree.locateLeaf(key)
	for id != NoNode {
		n := tree.node(id)
		idx, found := n.search(key)
		if found {
			return Position{Leaf: id, Index: idx}, true
		}
		if idx < len(n.keys) {
			// n.keys[idx] > key, nothing equal can follow
			break
		}

		// duplicates of a separator can sit right of the leaf the
		// descent ended in, keep walking the chain
		id = n.next
	}
	return Position{Leaf: NoNode}, false
}

// Contains reports whether at least one occurrence of key is stored.
func (tree *BPlusTree[K]) Contains(key K) bool {
	_, found := tree.Search(key)
	return found
}

// Count returns the number of occurrences of key.
func (tree *BPlusTree[K]) Count(key K) int {
	pos, found := tree.Search(key)
	if !found {
		return 0
	}

	count := 0
	for id, idx := pos.Leaf, pos.Index; id != NoNode; id, idx = tree.node(id).next, 0 {
		keys := tree.node(id).keys
		for ; idx < len(keys); idx++ {
			if keys[idx] != key {
				return count
			}
			count++
		}
	}
	return count
}

// Key returns the key stored at pos.
func (tree *BPlusTree[K]) Key(pos Position) (key K, ok bool) {
	if pos.Leaf < 0 || int(pos.Leaf) >= len(tree.nodes.nodes) {
		return key, false
	}
	n := tree.nodes.nodes[pos.Leaf]
	if n == nil || !n.isLeaf() || pos.Index < 0 || pos.Index >= len(n.keys) {
		return key, false
	}
	return n.keys[pos.Index], true
}

// Min returns the smallest key, false if the tree is empty.
func (tree *BPlusTree[K]) Min() (key K, ok bool) {
	for id := tree.leftLeaf(tree.root); id != NoNode; id = tree.node(id).next {
		if n := tree.node(id); len(n.keys) > 0 {
			return n.keys[0], true
		}
	}
	return key, false
}

// Max returns the largest key, false if the tree is empty.
func (tree *BPlusTree[K]) Max() (key K, ok bool) {
	for id := tree.rightLeaf(tree.root); id != NoNode; id = tree.node(id).prev {
		if n := tree.node(id); len(n.keys) > 0 {
			return n.keys[len(n.keys)-1], true
		}
	}
	return key, false
}

// locateLeaf descends from the root to the leaf that would contain key:
// at each internal node it follows the child preceding the first
// separator >= key, or the last child if there is none.
func (tree *BPlusTree[K]) locateLeaf(key K) NodeID {
	id := tree.root
	for n := tree.node(id); !n.isLeaf(); n = tree.node(id) {
		idx, _ := n.search(key)
		id = n.children[idx]
	}
	return id
}
