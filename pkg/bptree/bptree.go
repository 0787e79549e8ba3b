// Package bptree implements an in-memory B+ tree that keeps an ordered
// multiset of keys. Leaves hold the keys, internal nodes hold separators,
// and the tree rebalances itself by splitting full nodes on insertion and
// by borrowing from or merging with siblings on deletion.
//
// A BPlusTree is not safe for concurrent use. Callers sharing one tree
// between goroutines must serialize every operation.
package bptree

import (
	"fmt"

	"go-bptree/util/helpers"
	"go-bptree/util/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// New returns an empty B+ tree whose root is an empty leaf. If nil options
// are provided, defaultOptions will be used. Options that cannot describe a
// valid tree are rejected with ErrInvalidConfiguration.
func New[K constraints.Ordered](opts *Options) (*BPlusTree[K], error) {
	if opts == nil {
		opts = &defaultOptions
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.L
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tree id")
	}

	maxLeafKeys := opts.Order - 1
	minLeafKeys := maxLeafKeys / 2
	if opts.MinOccupancy == OccupancyCeil {
		minLeafKeys = helpers.CeilDiv(maxLeafKeys, 2)
	}

	tree := &BPlusTree[K]{
		id:          id,
		order:       opts.Order,
		occupancy:   opts.MinOccupancy,
		maxLeafKeys: maxLeafKeys,
		minLeafKeys: minLeafKeys,
		maxChildren: 2*opts.Order - 1,
		minChildren: opts.Order,
		nodes:       newArena[K](),
		log: log.WithFields(logrus.Fields{
			"prefix": "bptree",
			"tree":   id.String(),
		}),
	}
	tree.root, _ = tree.alloc(kindLeaf)

	tree.log.WithFields(logrus.Fields{
		"order":     tree.order,
		"occupancy": tree.occupancy,
	}).Debug("tree created")

	return tree, nil
}

// BPlusTree represents an in-memory B+ tree. All nodes live in an arena
// owned by the tree and reference their parent and children by NodeID.
type BPlusTree[K constraints.Ordered] struct {
	id  uuid.UUID
	log logrus.FieldLogger

	// fixed at construction
	order       int
	occupancy   Occupancy
	maxLeafKeys int
	minLeafKeys int
	maxChildren int
	minChildren int

	// tree state
	nodes *arena[K]
	root  NodeID
	size  int
}

// ID returns the random identifier attached to the tree's log entries.
func (tree *BPlusTree[K]) ID() uuid.UUID { return tree.id }

// Order returns the order the tree was built with.
func (tree *BPlusTree[K]) Order() int { return tree.order }

// Len returns the number of keys in the tree, duplicates included.
func (tree *BPlusTree[K]) Len() int { return tree.size }

// Height returns the number of levels, 1 for a tree whose root is a leaf.
func (tree *BPlusTree[K]) Height() int {
	h := 1
	for n := tree.node(tree.root); !n.isLeaf(); n = tree.node(n.children[0]) {
		h++
	}
	return h
}

// Limits reports the capacity bounds derived from the order. The root is
// exempt from the minimums.
func (tree *BPlusTree[K]) Limits() Limits {
	return Limits{
		MaxLeafKeys:         tree.maxLeafKeys,
		MinLeafKeys:         tree.minLeafKeys,
		MaxInternalChildren: tree.maxChildren,
		MinInternalChildren: tree.minChildren,
	}
}

// Limits holds the node capacity bounds of a tree.
type Limits struct {
	MaxLeafKeys         int
	MinLeafKeys         int
	MaxInternalChildren int
	MinInternalChildren int
}

func (tree *BPlusTree[K]) String() string {
	return fmt.Sprintf(
		"BPlusTree{size=%d, order=%d, height=%d, nodes=%d}",
		tree.size, tree.order, tree.Height(), tree.nodes.live(),
	)
}

func (tree *BPlusTree[K]) node(id NodeID) *node[K] {
	return tree.nodes.get(id)
}

func (tree *BPlusTree[K]) alloc(kind nodeKind) (NodeID, *node[K]) {
	capacity := tree.maxLeafKeys + 1
	if kind == kindInternal {
		capacity = tree.maxChildren
	}
	id := tree.nodes.alloc(kind, capacity)
	return id, tree.nodes.get(id)
}

// leftLeaf returns the left most leaf of the sub-tree rooted at id.
func (tree *BPlusTree[K]) leftLeaf(id NodeID) NodeID {
	for n := tree.node(id); !n.isLeaf(); n = tree.node(id) {
		id = n.children[0]
	}
	return id
}

// rightLeaf returns the right most leaf of the sub-tree rooted at id.
func (tree *BPlusTree[K]) rightLeaf(id NodeID) NodeID {
	for n := tree.node(id); !n.isLeaf(); n = tree.node(id) {
		id = n.children[len(n.children)-1]
	}
	return id
}
