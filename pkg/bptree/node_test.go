package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_node_Search(t *testing.T) {
	n := node[string]{
		kind: kindLeaf,
		keys: []string{"A", "B", "C", "D", "E", "F", "G"},
	}

	idx, found := n.search("D")
	assert(t, found, "expected key to exist")
	assert(t, idx == 3, "expected index to be 3 not %d", idx)

	idx, found = n.search("A")
	assert(t, found, "expected key to exist")
	assert(t, idx == 0, "expected index to be 0 not %d", idx)

	idx, found = n.search("G")
	assert(t, found, "expected key to exist")
	assert(t, idx == 6, "expected index to be 6 not %d", idx)

	idx, found = n.search("X")
	assert(t, !found, "expected key to not exist")
	assert(t, idx == 7, "expected insertion index to be 7 not %d", idx)

	idx, found = n.search("0")
	assert(t, !found, "expected key to not exist")
	assert(t, idx == 0, "expected insertion index to be 0 not %d", idx)
}

func Test_node_Search_Duplicates(t *testing.T) {
	n := node[int]{kind: kindLeaf, keys: []int{1, 2, 2, 2, 3}}

	idx, found := n.search(2)
	assert(t, found, "expected key to exist")
	assert(t, idx == 1, "expected first duplicate at 1 not %d", idx)

	idx = n.searchAfter(2)
	assert(t, idx == 4, "expected slot after duplicates to be 4 not %d", idx)

	idx = n.searchAfter(0)
	assert(t, idx == 0, "expected slot 0 not %d", idx)

	idx = n.searchAfter(3)
	assert(t, idx == 5, "expected slot 5 not %d", idx)
}

func Test_node_Search_Internal(t *testing.T) {
	// separators 10, 20, 30 over four children
	n := node[int]{kind: kindInternal, keys: []int{10, 20, 30}, children: []NodeID{4, 5, 6, 7}}

	for key, want := range map[int]int{5: 0, 10: 0, 11: 1, 20: 1, 25: 2, 30: 2, 31: 3} {
		idx, _ := n.search(key)
		assert(t, idx == want, "key %d: expected child %d not %d", key, want, idx)
	}
}

func Test_node_Mutations(t *testing.T) {
	n := node[int]{kind: kindInternal}

	n.appendKey(20)
	n.insertKey(0, 10)
	n.insertKey(2, 30)
	require.Equal(t, []int{10, 20, 30}, n.keys)

	n.appendChild(1)
	n.appendChild(3)
	n.insertChild(1, 2)
	n.insertChild(0, 0)
	require.Equal(t, []NodeID{0, 1, 2, 3}, n.children)
	require.Equal(t, 2, n.childIndex(2))

	removed := n.removeKeys(0, 2)
	require.Equal(t, []int{10, 20}, removed)
	require.Equal(t, []int{30}, n.keys)

	children := n.removeChildren(1, 3)
	require.Equal(t, []NodeID{1, 2}, children)
	require.Equal(t, []NodeID{0, 3}, n.children)

	require.Panics(t, func() { n.childIndex(9) })
}

func Test_node_String(t *testing.T) {
	leaf := node[int]{kind: kindLeaf, keys: []int{1, 2}, prev: NoNode, next: 4}
	require.Equal(t, "{1 2} [size=2, leaf=true, -1<-n->4]", leaf.String())

	internal := node[int]{kind: kindInternal, keys: []int{5}, children: []NodeID{1, 2}}
	require.Equal(t, "{5} [size=1, leaf=false, children=[1 2]]", internal.String())
}

func assert(t *testing.T, cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	t.Errorf(msg, args...)
}
