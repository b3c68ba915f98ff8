package rbset

// Nearest returns the element following (After) or preceding (Before) the
// position where. It returns nil if there is no such element or s is empty.
//
// For a position returned by a missed Find, this is the element which would
// follow (precede) the missing object after inserting it.
func (s *Set[T]) Nearest(where Where[T], dir Direction) *T {
	if s.IsEmpty() || where.node == nil {
		return nil
	}
	if !where.exact && where.side != dir {
		return object(where.node)
	}
	if dir == After {
		return object(where.node.Next())
	}
	return object(where.node.Prev())
}

// At returns the element at position where, or nil for the empty-set
// position. For the gap of a missed Find, this is the element bordering it.
func (s *Set[T]) At(where Where[T]) *T {
	return object(where.node)
}

// Locate returns the position of obj, which must be a member of s.
func (s *Set[T]) Locate(obj *T) Where[T] {
	s.mustBeInitialized()
	n := s.node(obj)
	s.mustContain(n, obj)
	return Where[T]{node: n, exact: true}
}

// Walk returns the neighbor of obj in direction dir, or nil if obj is the
// first (last) element. obj must be a member of s.
//
// Iterating in ascending order looks like this:
//
//	for x := set.First(); x != nil; x = set.Walk(x, rbset.After) {
//	    …
//	}
func (s *Set[T]) Walk(obj *T, dir Direction) *T {
	return s.Nearest(s.Locate(obj), dir)
}

// Ascend calls fn for every element in ascending order.
// Iteration stops early if fn returns false. fn must not change s.
func (s *Set[T]) Ascend(fn func(obj *T) bool) {
	s.each(s.First(), After, fn)
}

// Descend calls fn for every element in descending order.
// Iteration stops early if fn returns false. fn must not change s.
func (s *Set[T]) Descend(fn func(obj *T) bool) {
	s.each(s.Last(), Before, fn)
}

func (s *Set[T]) each(start *T, dir Direction, fn func(obj *T) bool) {
	if s == nil || fn == nil || start == nil {
		return
	}
	n := s.node(start)
	for n != nil {
		if !fn(n.Owner()) {
			return
		}
		if dir == After {
			n = n.Next()
		} else {
			n = n.Prev()
		}
	}
}
