package rbset

import (
	"github.com/npillmayer/rbset/rbtree"
)

// Node is the linkage clients embed into objects to be stored in a Set.
// The zero value is an unlinked node.
type Node[T any] = rbtree.Node[T]

// Comparator defines a strict total order on objects. It must return -1 if
// a sorts before b, +1 if a sorts after b, and 0 if both are equal. Any other
// result makes the set panic.
type Comparator[T any] func(a, b *T) int

// Linkage locates the Node embedded in an object. It has to return the same
// node for the same object for as long as the object is linked.
type Linkage[T any] func(obj *T) *Node[T]

// Direction selects a side relative to an element in sort order.
type Direction int

const (
	Before Direction = iota // towards smaller elements
	After                   // towards larger elements
)

func (d Direction) String() string {
	if d == After {
		return "after"
	}
	return "before"
}

// Where is a position inside a set, as returned by Find and Locate. The zero
// value denotes the position in an empty set.
//
// A position either denotes an element (exact) or a gap next to an element,
// where a missing object would go.
// A Where is valid only until the next structural change of the set.
type Where[T any] struct {
	node  *Node[T]
	side  Direction // side of node the gap is on, if not exact
	exact bool
}

// IsZero reports whether w is the empty-set position.
func (w Where[T]) IsZero() bool {
	return w.node == nil
}

// Set is an ordered set of intrusively linked objects.
//
// The zero value is not usable; call Init or create sets with New or Create.
// A Set header may be embedded into client structures.
type Set[T any] struct {
	tree    rbtree.Tree[T]
	compare Comparator[T]
	linkage Linkage[T]
	count   int
	first   *T
	last    *T
	checked bool
}

// New creates an empty set ordered by compare. link locates the Node inside an
// object. Both must be non-nil.
func New[T any](compare Comparator[T], link Linkage[T]) *Set[T] {
	s := &Set[T]{}
	s.Init(compare, link)
	return s
}

// Init (re-)initializes s as an empty set. Any former content is forgotten
// without touching the linkage of its elements, therefore Init should be called
// on fresh or released sets only.
func (s *Set[T]) Init(compare Comparator[T], link Linkage[T]) {
	assert(s != nil, "rbset: cannot initialize nil set")
	assert(compare != nil, "rbset: comparator must not be nil")
	assert(link != nil, "rbset: linkage must not be nil")
	*s = Set[T]{
		compare: compare,
		linkage: link,
	}
}

// Count returns the number of elements in s.
func (s *Set[T]) Count() int {
	return s.count
}

// IsEmpty reports whether s has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.count == 0
}

// First returns the smallest element of s, or nil for an empty set.
func (s *Set[T]) First() *T {
	return s.first
}

// Last returns the largest element of s, or nil for an empty set.
func (s *Set[T]) Last() *T {
	return s.last
}

// Height returns the height of the underlying tree.
func (s *Set[T]) Height() int {
	return s.tree.Height()
}

// Root exposes the root node of the underlying tree for inspection, e.g. by
// printers. Clients must not modify the tree through it.
func (s *Set[T]) Root() *Node[T] {
	return s.tree.Root()
}

// Swap exchanges the complete state of a and b, i.e. afterwards a governs the
// former elements of b and vice versa. No element is touched.
func Swap[T any](a, b *Set[T]) {
	assert(a != nil && b != nil, "rbset: cannot swap nil set")
	*a, *b = *b, *a
	tracer().Debugf("rbset: swapped sets of %d and %d elements", a.count, b.count)
}

// Swap exchanges the complete state of s and other.
func (s *Set[T]) Swap(other *Set[T]) {
	Swap(s, other)
}

// --- Helpers ---------------------------------------------------------------

func (s *Set[T]) mustBeInitialized() {
	assert(s != nil, "rbset: set is nil")
	assert(s.compare != nil && s.linkage != nil, "rbset: set is not initialized")
}

// node translates an object to its embedded linkage.
func (s *Set[T]) node(obj *T) *Node[T] {
	assert(obj != nil, "rbset: object must not be nil")
	n := s.linkage(obj)
	assert(n != nil, "rbset: linkage returned nil node")
	return n
}

// cmp calls the comparator and enforces the contract on its result.
func (s *Set[T]) cmp(a, b *T) int {
	c := s.compare(a, b)
	assert(c >= -1 && c <= 1, "rbset: comparator result out of range")
	return c
}

// mustContain panics unless n is linked into s and still belongs to obj.
func (s *Set[T]) mustContain(n *Node[T], obj *T) {
	assert(s.tree.Contains(n) && n.Owner() == obj, "rbset: object is not a member of this set")
}

func object[T any](n *Node[T]) *T {
	if n == nil {
		return nil
	}
	return n.Owner()
}
