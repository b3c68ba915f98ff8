package rbtree

// Tree is the root of a red-black tree. The zero value is an empty tree,
// ready to use.
type Tree[T any] struct {
	root *Node[T]
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// IsEmpty reports whether t has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// First returns the leftmost node of t, or nil.
func (t *Tree[T]) First() *Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.outermost(Left)
}

// Last returns the rightmost node of t, or nil.
func (t *Tree[T]) Last() *Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.outermost(Right)
}

// Contains reports whether n is linked into t. It walks from n up to its
// root, i.e. it takes O(log n) steps.
func (t *Tree[T]) Contains(n *Node[T]) bool {
	if !n.IsLinked() || t.root == nil {
		return false
	}
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}

// Height returns the number of nodes on the longest path from the root down
// to a leaf.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.child[Left]), height(n.child[Right]))
}

// --- Insertion -------------------------------------------------------------

// Link attaches the unlinked node n as the child of parent in slot d and
// rebalances. A nil parent makes n the root of t, which is legal for an empty
// tree only. The slot must be vacant.
//
// Link does not care about ordering; placing n correctly is the client's job.
func (t *Tree[T]) Link(n, parent *Node[T], d Dir) {
	assert(n != nil, "rbtree: cannot link nil node")
	assert(!n.linked, "rbtree: node is already linked")
	if parent == nil {
		assert(t.root == nil, "rbtree: root link into non-empty tree")
		t.root = n
	} else {
		assert(parent.linked, "rbtree: parent is not linked")
		assert(parent.child[d] == nil, "rbtree: child slot is occupied")
		parent.child[d] = n
	}
	n.parent = parent
	n.child = [2]*Node[T]{}
	n.color = Red
	n.linked = true
	t.insertFixup(n)
}

// insertFixup repairs a red-red violation between n and its parent,
// walking upwards as long as recoloring pushes the violation up.
func (t *Tree[T]) insertFixup(n *Node[T]) {
	for {
		p := n.parent
		if p == nil {
			n.color = Black
			return
		}
		if p.color == Black {
			return
		}
		g := p.parent
		if g == nil { // red root: blacken it
			p.color = Black
			return
		}
		d := p.side()
		if u := g.child[d.opposite()]; isRed(u) {
			p.color, u.color, g.color = Black, Black, Red
			n = g
			continue
		}
		if n == p.child[d.opposite()] { // inner grandchild: make it outer
			t.rotate(p, d)
			n, p = p, n
		}
		t.rotate(g, d.opposite())
		p.color, g.color = Black, Red
		return
	}
}

// --- Removal ---------------------------------------------------------------

// Erase unlinks n from t and rebalances. n must be linked into t.
// Afterwards n is an unlinked node again; its owner reference is left alone.
func (t *Tree[T]) Erase(n *Node[T]) {
	assert(n.IsLinked(), "rbtree: cannot erase unlinked node")
	var child, parent *Node[T] // child moves into the vacated position below parent
	var removed Color          // color taken out of the tree
	if n.child[Left] != nil && n.child[Right] != nil {
		// Relink n's successor s into n's position. Clients hold pointers to
		// their objects, therefore we must not swap payloads.
		s := n.child[Right].outermost(Left)
		child, removed = s.child[Right], s.color
		if s.parent == n {
			parent = s
		} else {
			parent = s.parent
			parent.child[Left] = child
			if child != nil {
				child.parent = parent
			}
			s.child[Right] = n.child[Right]
			s.child[Right].parent = s
		}
		s.child[Left] = n.child[Left]
		s.child[Left].parent = s
		t.replace(n, s)
		s.color = n.color
	} else {
		child = n.child[Left]
		if child == nil {
			child = n.child[Right]
		}
		parent, removed = n.parent, n.color
		if child != nil {
			child.parent = parent
		}
		t.replace(n, child)
	}
	if removed == Black {
		t.eraseFixup(child, parent)
	}
	n.parent = nil
	n.child = [2]*Node[T]{}
	n.linked = false
}

// eraseFixup resolves a missing black node on the path through x, which
// hangs below parent p. x may be nil.
func (t *Tree[T]) eraseFixup(x, p *Node[T]) {
	for x != t.root && !isRed(x) {
		d := Left
		if x != p.child[Left] {
			d = Right
		}
		o := d.opposite()
		w := p.child[o] // cannot be nil: the sibling side carries more black
		if w.color == Red {
			w.color, p.color = Black, Red
			t.rotate(p, d)
			w = p.child[o]
		}
		if !isRed(w.child[Left]) && !isRed(w.child[Right]) {
			w.color = Red
			x, p = p, p.parent
			continue
		}
		if !isRed(w.child[o]) {
			w.child[d].color = Black
			w.color = Red
			t.rotate(w, o)
			w = p.child[o]
		}
		w.color = p.color
		p.color = Black
		w.child[o].color = Black
		t.rotate(p, d)
		x = t.root
		break
	}
	if x != nil {
		x.color = Black
	}
}

// --- Rotation --------------------------------------------------------------

// rotate lifts the child of n opposite to d into n's position; n moves down
// into slot d of that child.
func (t *Tree[T]) rotate(n *Node[T], d Dir) {
	o := d.opposite()
	c := n.child[o]
	n.child[o] = c.child[d]
	if c.child[d] != nil {
		c.child[d].parent = n
	}
	t.replace(n, c)
	c.child[d] = n
	n.parent = c
}

// replace puts r into the position of old below old's parent. r's parent
// pointer is updated, r's children are not touched.
func (t *Tree[T]) replace(old, r *Node[T]) {
	p := old.parent
	if p == nil {
		t.root = r
	} else if p.child[Left] == old {
		p.child[Left] = r
	} else {
		p.child[Right] = r
	}
	if r != nil {
		r.parent = p
	}
}
