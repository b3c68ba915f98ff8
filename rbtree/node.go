package rbtree

// Color is the color of a tree node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Dir selects a child slot of a node.
type Dir uint8

const (
	Left  Dir = 0
	Right Dir = 1
)

func (d Dir) opposite() Dir {
	return 1 - d
}

// Node is the linkage a client embeds into the objects it wants to keep in a
// tree. The zero value is an unlinked node.
//
// The owner reference is maintained by the client layer. The engine carries it
// along but never looks at it.
type Node[T any] struct {
	parent *Node[T]
	child  [2]*Node[T]
	color  Color
	linked bool
	owner  *T
}

// Owner returns the object n is embedded in, as set by SetOwner.
func (n *Node[T]) Owner() *T {
	return n.owner
}

// SetOwner binds n to its enclosing object.
func (n *Node[T]) SetOwner(obj *T) {
	n.owner = obj
}

// IsLinked reports whether n is currently part of a tree.
func (n *Node[T]) IsLinked() bool {
	return n != nil && n.linked
}

// Parent returns the parent of n, or nil for a root or an unlinked node.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Child returns the child of n in slot d.
func (n *Node[T]) Child(d Dir) *Node[T] {
	return n.child[d]
}

// Left returns the left child of n.
func (n *Node[T]) Left() *Node[T] {
	return n.child[Left]
}

// Right returns the right child of n.
func (n *Node[T]) Right() *Node[T] {
	return n.child[Right]
}

// Color returns the color of n.
func (n *Node[T]) Color() Color {
	return n.color
}

// Next returns the in-order successor of n, or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.step(Right)
}

// Prev returns the in-order predecessor of n, or nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.step(Left)
}

// step finds the in-order neighbor of n in direction d.
func (n *Node[T]) step(d Dir) *Node[T] {
	if c := n.child[d]; c != nil {
		return c.outermost(d.opposite())
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.child[d.opposite()] {
			return p
		}
	}
	return nil
}

// outermost follows child slot d down as far as possible.
func (n *Node[T]) outermost(d Dir) *Node[T] {
	for n.child[d] != nil {
		n = n.child[d]
	}
	return n
}

// side returns the child slot of n's parent which holds n.
func (n *Node[T]) side() Dir {
	if n.parent.child[Right] == n {
		return Right
	}
	return Left
}

func isRed[T any](n *Node[T]) bool {
	return n != nil && n.color == Red
}
