package rbtree

import "fmt"

// Check validates the red-black properties and the parent/child linkage of t.
// It visits every node and is meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	_, err := t.checkNode(t.root)
	return err
}

// checkNode returns the black height of the subtree at n.
func (t *Tree[T]) checkNode(n *Node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if !n.linked {
		return 0, fmt.Errorf("%w: reachable node is not flagged as linked", ErrInvariant)
	}
	var bh [2]int
	for _, d := range [...]Dir{Left, Right} {
		c := n.child[d]
		if c != nil {
			if c.parent != n {
				return 0, fmt.Errorf("%w: broken parent link", ErrInvariant)
			}
			if n.color == Red && c.color == Red {
				return 0, fmt.Errorf("%w: red node with red child", ErrInvariant)
			}
		}
		h, err := t.checkNode(c)
		if err != nil {
			return 0, err
		}
		bh[d] = h
	}
	if bh[Left] != bh[Right] {
		return 0, fmt.Errorf("%w: black height mismatch (%d != %d)",
			ErrInvariant, bh[Left], bh[Right])
	}
	if n.color == Black {
		return bh[Left] + 1, nil
	}
	return bh[Left], nil
}
