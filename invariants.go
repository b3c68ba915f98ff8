package rbset

import "fmt"

// Check validates s: the balancing invariants of the tree, the element count,
// the cached first and last elements, the linkage of every element, and the
// ordering of neighbors under the comparator.
//
// Check visits every element and is meant for tests and debugging.
func (s *Set[T]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil set", ErrInconsistent)
	}
	if err := s.tree.Check(); err != nil {
		return err
	}
	if s.tree.IsEmpty() {
		if s.count != 0 || s.first != nil || s.last != nil {
			return fmt.Errorf("%w: empty tree with count=%d", ErrInconsistent, s.count)
		}
		return nil
	}
	if s.compare == nil || s.linkage == nil {
		return fmt.Errorf("%w: non-empty set is not initialized", ErrInconsistent)
	}
	if object(s.tree.First()) != s.first {
		return fmt.Errorf("%w: cached first element is stale", ErrInconsistent)
	}
	if object(s.tree.Last()) != s.last {
		return fmt.Errorf("%w: cached last element is stale", ErrInconsistent)
	}
	cnt := 0
	var prev *T
	for n := s.tree.First(); n != nil; n = n.Next() {
		obj := n.Owner()
		if obj == nil {
			return fmt.Errorf("%w: linked node without owner", ErrInconsistent)
		}
		if s.linkage(obj) != n {
			return fmt.Errorf("%w: linkage does not lead back to node", ErrInconsistent)
		}
		if prev != nil && s.compare(prev, obj) > 0 {
			return fmt.Errorf("%w: elements out of order at index %d", ErrInconsistent, cnt)
		}
		prev = obj
		cnt++
	}
	if cnt != s.count {
		return fmt.Errorf("%w: count is %d, tree holds %d", ErrInconsistent, s.count, cnt)
	}
	return nil
}
