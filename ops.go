package rbset

import (
	"github.com/npillmayer/rbset/rbtree"
)

// Find looks up an element equal to obj under the comparator.
//
// If there is one, Find returns it together with its position. Otherwise it
// returns nil and the position of the last element visited. Handing that
// position to Insert links obj where a walk from the root would have put it.
func (s *Set[T]) Find(obj *T) (*T, Where[T]) {
	s.mustBeInitialized()
	assert(obj != nil, "rbset: cannot find nil object")
	var prev *Node[T]
	side := Before
	n := s.tree.Root()
	for n != nil {
		switch s.cmp(obj, n.Owner()) {
		case -1:
			prev, side, n = n, Before, n.Left()
		case 1:
			prev, side, n = n, After, n.Right()
		default:
			return n.Owner(), Where[T]{node: n, exact: true}
		}
	}
	return nil, Where[T]{node: prev, side: side}
}

// Insert links obj at a position previously returned by Find. The set must not
// have changed since. A zero Where is legal for an empty set only.
//
// obj is placed after the element at where if it does not compare less, and
// before it otherwise.
func (s *Set[T]) Insert(obj *T, where Where[T]) {
	s.mustBeInitialized()
	n := s.node(obj)
	if where.node == nil {
		assert(s.count == 0, "rbset: empty-set position used for non-empty set")
		n.SetOwner(obj)
		s.tree.Link(n, nil, rbtree.Left)
		s.count = 1
		s.first, s.last = obj, obj
		s.verify("insert")
		return
	}
	assert(s.tree.Contains(where.node), "rbset: position does not belong to this set")
	dir := Before
	if s.cmp(obj, where.node.Owner()) != -1 {
		dir = After
	}
	s.link(obj, n, where.node, dir)
}

// InsertHere links obj immediately before or after here, which must be a
// member of s. No comparisons are made, so clients are responsible for keeping
// the order consistent. This is useful to arrange elements with equal keys in
// an order of the client's choice.
func (s *Set[T]) InsertHere(obj *T, here *T, dir Direction) {
	s.mustBeInitialized()
	assert(s.count > 0, "rbset: InsertHere on empty set")
	anchor := s.node(here)
	s.mustContain(anchor, here)
	s.link(obj, s.node(obj), anchor, dir)
}

// Add inserts obj at the position found by Find. If equal elements are
// present, obj lands next to one of them.
func (s *Set[T]) Add(obj *T) {
	_, where := s.Find(obj)
	s.Insert(obj, where)
}

// link attaches n next to anchor. If the child slot of anchor on side dir is
// taken, n goes to the vacant opposite slot of anchor's in-order neighbor on
// that side, which yields the same in-order position.
func (s *Set[T]) link(obj *T, n, anchor *Node[T], dir Direction) {
	here := anchor.Owner()
	parent, slot := anchor, rbtree.Left
	if dir == After {
		slot = rbtree.Right
	}
	if anchor.Child(slot) != nil {
		if dir == After {
			parent, slot = anchor.Next(), rbtree.Left
		} else {
			parent, slot = anchor.Prev(), rbtree.Right
		}
	}
	n.SetOwner(obj)
	s.tree.Link(n, parent, slot)
	s.count++
	if dir == Before && here == s.first {
		s.first = obj
	}
	if dir == After && here == s.last {
		s.last = obj
	}
	s.verify("insert")
}

// Remove unlinks obj, which must be a member of s.
func (s *Set[T]) Remove(obj *T) {
	s.mustBeInitialized()
	n := s.node(obj)
	s.mustContain(n, obj)
	s.count--
	if obj == s.first {
		if s.count > 0 {
			s.first = object(n.Next())
		} else {
			s.first = nil
		}
	}
	if obj == s.last {
		if s.count > 0 {
			s.last = object(n.Prev())
		} else {
			s.last = nil
		}
	}
	s.tree.Erase(n)
	n.SetOwner(nil)
	s.verify("remove")
}

// verify runs the full consistency check after structural changes if the set
// has been configured to do so.
func (s *Set[T]) verify(op string) {
	if !s.checked {
		return
	}
	if err := s.Check(); err != nil {
		tracer().Errorf("rbset: %s left set inconsistent: %v", op, err)
		panic(err)
	}
}
