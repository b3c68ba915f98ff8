/*
Package rbtree implements the balancing engine underneath package rbset.

The engine operates on intrusive linkage nodes only. It knows about parents,
children, colors and rotations, but never compares anything: clients decide
where a node goes and call Link, and the engine restores the red-black
properties. Erase unlinks a node and rebalances. Nodes are relinked, never
copied, so a node stays attached to its enclosing object for as long as it is
part of a tree.

Red-black properties maintained by every operation:
  - the root is black,
  - a red node has no red child,
  - every path from a node down to a nil leaf passes the same number of black
    nodes.

Together they bound the height of a tree with n nodes to 2·log2(n+1).

The engine is not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbset'
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}

func assert(condition bool, msg string) {
	if !condition {
		tracer().Errorf(msg)
		panic(msg)
	}
}
