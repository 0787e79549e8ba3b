package printer

import (
	"strings"
	"testing"

	"go-bptree/pkg/bptree"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, order int, keys ...int) *bptree.BPlusTree[int] {
	l, _ := test.NewNullLogger()
	tree, err := bptree.New[int](&bptree.Options{Order: order, Logger: l})
	require.NoError(t, err)
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestSprint(t *testing.T) {
	require.Equal(t, "L0: []\n\n", Sprint(newTree(t, 3).Traverse()))
	require.Equal(t, "L0: [2 9]\n\n", Sprint(newTree(t, 3, 9, 2).Traverse()))
	require.Equal(t, "L0: (3)\nL1: [1 2] [3]\n\n", Sprint(newTree(t, 3, 1, 2, 3).Traverse()))
}

func TestPrintIDs(t *testing.T) {
	buf := strings.Builder{}
	tree := newTree(t, 3, 1, 2, 3)

	require.NoError(t, New[int](&buf, Options{IDs: true}).Print(tree.Traverse()))
	require.Equal(t, "L0: (3)#2\nL1: [1 2]#1 [3]#0\n\n", buf.String())
}

func TestPrintColor(t *testing.T) {
	buf := strings.Builder{}
	tree := newTree(t, 3, 1, 2, 3)

	require.NoError(t, New[int](&buf, Options{Color: true}).Print(tree.Traverse()))
	out := buf.String()
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "[1 2]")
	require.Equal(t, 3, strings.Count(out, "\n"))
}

func TestPrintLevels(t *testing.T) {
	keys := []int{5, 21, 16, 1, 6, 2, 7, 9, 12, 18, 0}
	tree := newTree(t, 3, keys...)

	lines := strings.Split(strings.TrimRight(Sprint(tree.Traverse()), "\n"), "\n")
	require.Len(t, lines, tree.Height())
	for i, line := range lines {
		require.True(t, strings.HasPrefix(line, "L"+string(rune('0'+i))+":"), line)
	}
	require.Equal(t, "L0: (9)", lines[0])
}
