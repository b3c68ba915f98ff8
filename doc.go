/*
Package rbset offers an intrusive ordered set for arbitrary client objects.

Objects are kept in ascending order under a client-supplied comparator.
Lookup, insertion and removal take logarithmic time, the smallest and largest
element are cached and available in constant time.

# Intrusive linkage

The set never allocates. Clients embed a Node into the objects they want to
store, and tell the set how to get from an object to its node:

	type Timer struct {
		Deadline time.Time
		link     rbset.Node[Timer]
	}

	timers := rbset.New(func(a, b *Timer) int {
		return a.Deadline.Compare(b.Deadline)
	}, func(t *Timer) *rbset.Node[Timer] {
		return &t.link
	})

An object may carry more than one Node, which lets it be a member of several
sets with different orderings at the same time. Clients own their objects: an
object must not be re-used for another purpose while it is linked, and its key
fields must not change while it is linked. Remove it, update it, and insert
it again.

# Hints

Find walks down the tree once. On a miss it returns a Where hint, which
identifies the position the object would go to. Insert accepts this hint and
links the object without comparing its way down again. This is the way to
implement an "insert unless present" without paying for two walks:

	found, where := set.Find(probe)
	if found == nil {
		set.Insert(probe, where)
	}

# Teardown

Drain removes and returns the smallest element, and returns nil once the set
is empty. Calling it in a loop is the safe way to empty a set before Release.

# Errors

Violating a precondition (using a set before it has been initialized,
removing an object which is not a member, a comparator returning something
other than -1, 0 or +1, releasing a non-empty set) is a programming error and
makes the set panic at the offending call. Negative results, such as a missed
lookup or walking past the last element, are reported as nil results.

Sets are not safe for concurrent use. Clients have to serialize all calls,
including read-only ones, with a lock of their own.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rbset

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
