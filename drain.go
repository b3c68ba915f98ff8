package rbset

// Drain removes the smallest element from s and returns it. Once s is empty,
// Drain returns nil, no matter how often it is called.
//
// Calling Drain until it returns nil is the way to empty a set before Release:
//
//	for obj := set.Drain(); obj != nil; obj = set.Drain() {
//	    free(obj)
//	}
//
// Other calls may be interleaved; s stays fully usable.
func (s *Set[T]) Drain() *T {
	assert(s != nil, "rbset: set is nil")
	obj := s.first
	if obj == nil {
		return nil
	}
	s.Remove(obj)
	return obj
}

// Release tears down an empty set. Afterwards s has to be initialized again
// before it can hold elements. Release does not deallocate the header itself,
// as it may well be part of a larger client structure.
//
// Releasing a set which still has elements is a programming error.
func (s *Set[T]) Release() {
	assert(s != nil, "rbset: set is nil")
	assert(s.count == 0 && s.tree.IsEmpty(), "rbset: releasing non-empty set")
	tracer().Debugf("rbset: releasing set")
	*s = Set[T]{}
}
