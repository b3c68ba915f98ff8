package rbtree

import "errors"

var (
	// ErrInvariant signals a violated red-black or linkage invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
)
