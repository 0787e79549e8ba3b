package bptree

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by Delete when the key is not stored in
	// the tree. The tree is left untouched.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidConfiguration is returned by New when the options cannot
	// describe a valid tree (order < 2, unknown occupancy policy).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrCorrupted is returned by Validate when a structural invariant
	// does not hold.
	ErrCorrupted = errors.New("tree corrupted")
)
